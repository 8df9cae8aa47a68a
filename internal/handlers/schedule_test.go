package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/masjidia/jadwal-sholat-service/internal/astro"
	"github.com/masjidia/jadwal-sholat-service/internal/dtos"
	"github.com/masjidia/jadwal-sholat-service/internal/prayer"
	"github.com/masjidia/jadwal-sholat-service/internal/services"
)

func seedSnapshot() services.Snapshot {
	now := time.Date(2025, 3, 10, 4, 50, 0, 0, time.FixedZone("WIB", 7*3600))

	prayers := []prayer.Prayer{
		{Name: prayer.NameSubuh, AdhanTime: "04:45", IqamahTime: "05:00", Status: prayer.StatusCurrent, Countdown: "10m"},
		{Name: prayer.NameDzuhur, AdhanTime: "12:02", IqamahTime: "12:17", Status: prayer.StatusUpcoming, Countdown: "7j 12m"},
		{Name: prayer.NameAshar, AdhanTime: "15:14", IqamahTime: "15:29", Status: prayer.StatusUpcoming},
		{Name: prayer.NameMaghrib, AdhanTime: "18:08", IqamahTime: "18:13", Status: prayer.StatusUpcoming},
		{Name: prayer.NameIsya, AdhanTime: "19:17", IqamahTime: "19:32", Status: prayer.StatusUpcoming},
	}

	syuruq := prayer.Prayer{Name: prayer.NameSyuruq, AdhanTime: "06:01", Status: prayer.StatusUpcoming}

	return services.Snapshot{
		GeneratedAt: now,
		CivilDate:   "2025-03-10",
		Hijri:       astro.ToHijri(now),
		IsRamadan:   true,
		Prayers:     prayers,
		Display:     prayer.WithSyuruq(prayers, syuruq),
		Next:        &prayer.NextPrayer{Prayer: prayers[1]},
		Current:     &prayers[0],
		Phase:       prayer.PhaseAdhan,
	}
}

func TestGetSchedule(t *testing.T) {
	testRuntime.snapshot = seedSnapshot()

	res, err := testClient.Get(testServer.URL + "/schedule")
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}

	var resBody dtos.ScheduleResponse
	if err = json.NewDecoder(res.Body).Decode(&resBody); err != nil {
		t.Fatalf("unexpected response body: %v", err)
	}

	if resBody.CivilDate != "2025-03-10" || !resBody.IsRamadan {
		t.Errorf("unexpected schedule header: %+v", resBody)
	}

	expectedHijri := dtos.HijriResponse{Year: 1446, Month: 9, Day: 10, MonthName: "Ramadhan"}
	if diff := cmp.Diff(expectedHijri, resBody.Hijri); diff != "" {
		t.Error(diff)
	}

	if len(resBody.Prayers) != 6 {
		t.Fatalf("expected 6 display rows, got %d", len(resBody.Prayers))
	}

	if resBody.Prayers[1].Name != prayer.NameSyuruq {
		t.Errorf("expected syuruq second, got %s", resBody.Prayers[1].Name)
	}
}

func TestGetNextPrayer(t *testing.T) {
	nextPrayerTable := []struct {
		name           string
		snapshot       services.Snapshot
		expectedStatus int
		expectedName   string
		expectTomorrow bool
	}{
		{
			name:           "GetNextPrayer/Today",
			snapshot:       seedSnapshot(),
			expectedStatus: http.StatusOK,
			expectedName:   prayer.NameDzuhur,
		},
		{
			name: "GetNextPrayer/Tomorrow",
			snapshot: services.Snapshot{
				CivilDate: "2025-03-10",
				Next: &prayer.NextPrayer{
					Prayer:     prayer.Prayer{Name: prayer.NameSubuh, AdhanTime: "04:45", IqamahTime: "05:00", Status: prayer.StatusUpcoming},
					IsTomorrow: true,
				},
			},
			expectedStatus: http.StatusOK,
			expectedName:   prayer.NameSubuh,
			expectTomorrow: true,
		},
		{
			name:           "GetNextPrayer/Not Found",
			snapshot:       services.Snapshot{CivilDate: "2025-03-10"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, v := range nextPrayerTable {
		t.Run(v.name, func(t *testing.T) {
			testRuntime.snapshot = v.snapshot

			res, err := testClient.Get(testServer.URL + "/schedule/next")
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}
			defer res.Body.Close()

			if res.StatusCode != v.expectedStatus {
				t.Fatalf("expected status %d, got %d", v.expectedStatus, res.StatusCode)
			}

			if v.expectedStatus == http.StatusOK {
				var resBody dtos.NextPrayerResponse
				if err = json.NewDecoder(res.Body).Decode(&resBody); err != nil {
					t.Fatalf("unexpected response body: %v", err)
				}

				if resBody.Prayer.Name != v.expectedName || resBody.IsTomorrow != v.expectTomorrow {
					t.Errorf("expected %s (tomorrow=%t), got %+v", v.expectedName, v.expectTomorrow, resBody)
				}
			}
		})
	}
}

func TestGetStatus(t *testing.T) {
	testRuntime.snapshot = seedSnapshot()

	res, err := testClient.Get(testServer.URL + "/status")
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}

	var resBody dtos.StatusResponse
	if err = json.NewDecoder(res.Body).Decode(&resBody); err != nil {
		t.Fatalf("unexpected response body: %v", err)
	}

	if resBody.Current == nil || resBody.Current.Name != prayer.NameSubuh || resBody.Phase != string(prayer.PhaseAdhan) {
		t.Errorf("unexpected status response: %+v", resBody)
	}

	if resBody.Current != nil && resBody.Current.Countdown != "10m" {
		t.Errorf("expected window countdown 10m, got %q", resBody.Current.Countdown)
	}

	if resBody.IqamahCountdown != "10m" {
		t.Errorf("expected iqamah countdown 10m, got %q", resBody.IqamahCountdown)
	}
}

func TestPreviewSchedule(t *testing.T) {
	previewTable := []struct {
		name           string
		reqBody        string
		expectedStatus int
	}{
		{
			name:           "PreviewSchedule/Success",
			reqBody:        `{"date": "2025-03-10", "latitude": -6.3140892, "longitude": 106.8776666, "fajr_angle": 20, "isha_angle": 18, "utc_offset": 7}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "PreviewSchedule/Bad Request (missing date)",
			reqBody:        `{"latitude": -6.3140892, "longitude": 106.8776666, "fajr_angle": 20, "isha_angle": 18, "utc_offset": 7}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "PreviewSchedule/Bad Request (latitude out of range)",
			reqBody:        `{"date": "2025-03-10", "latitude": -96, "longitude": 106.8776666, "fajr_angle": 20, "isha_angle": 18, "utc_offset": 7}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "PreviewSchedule/Unprocessable (polar latitude)",
			reqBody:        `{"date": "2025-06-21", "latitude": 75, "longitude": 20, "fajr_angle": 20, "isha_angle": 18, "utc_offset": 2}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, v := range previewTable {
		t.Run(v.name, func(t *testing.T) {
			res, err := testClient.Post(testServer.URL+"/schedule/preview", "application/json", bytes.NewBufferString(v.reqBody))
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}
			defer res.Body.Close()

			if res.StatusCode != v.expectedStatus {
				t.Fatalf("expected status %d, got %d", v.expectedStatus, res.StatusCode)
			}

			if v.expectedStatus == http.StatusOK {
				var resBody dtos.ScheduleResponse
				if err = json.NewDecoder(res.Body).Decode(&resBody); err != nil {
					t.Fatalf("unexpected response body: %v", err)
				}

				if len(resBody.Prayers) != 5 {
					t.Errorf("expected 5 prayers, got %d", len(resBody.Prayers))
				}

				if !resBody.IsRamadan {
					t.Error("expected ramadan flag for 2025-03-10")
				}
			}
		})
	}
}

func TestGetHijriDate(t *testing.T) {
	hijriTable := []struct {
		name           string
		dateQueryParam string
		expectedStatus int
		expected       dtos.HijriResponse
	}{
		{
			name:           "GetHijriDate/Success",
			dateQueryParam: "2024-04-10",
			expectedStatus: http.StatusOK,
			expected:       dtos.HijriResponse{Year: 1445, Month: 10, Day: 1, MonthName: "Syawal"},
		},
		{
			name:           "GetHijriDate/Bad Request (malformed date)",
			dateQueryParam: "10-03-2025",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, v := range hijriTable {
		t.Run(v.name, func(t *testing.T) {
			url := fmt.Sprintf("%s/calendar/hijri?date=%s", testServer.URL, v.dateQueryParam)
			res, err := testClient.Get(url)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}
			defer res.Body.Close()

			if res.StatusCode != v.expectedStatus {
				t.Fatalf("expected status %d, got %d", v.expectedStatus, res.StatusCode)
			}

			if v.expectedStatus == http.StatusOK {
				var resBody dtos.HijriDateResponse
				if err = json.NewDecoder(res.Body).Decode(&resBody); err != nil {
					t.Fatalf("unexpected response body: %v", err)
				}

				if diff := cmp.Diff(v.expected, resBody.Hijri); diff != "" {
					t.Error(diff)
				}
			}
		})
	}
}
