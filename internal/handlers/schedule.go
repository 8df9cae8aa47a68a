package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/masjidia/jadwal-sholat-service/configs"
	"github.com/masjidia/jadwal-sholat-service/internal/astro"
	"github.com/masjidia/jadwal-sholat-service/internal/dtos"
	"github.com/masjidia/jadwal-sholat-service/internal/httputil"
	"github.com/masjidia/jadwal-sholat-service/internal/prayer"
	"github.com/masjidia/jadwal-sholat-service/internal/services"
	"github.com/rs/zerolog/log"
)

// SnapshotProvider is the slice of the engine runtime the HTTP layer
// needs; tests seed it with a synthetic clock.
type SnapshotProvider interface {
	Snapshot() services.Snapshot
}

type ScheduleHandler interface {
	GetSchedule(res http.ResponseWriter, req *http.Request)
	GetNextPrayer(res http.ResponseWriter, req *http.Request)
	GetStatus(res http.ResponseWriter, req *http.Request)
	PreviewSchedule(res http.ResponseWriter, req *http.Request)
}

type schedule struct {
	configs configs.Configs
	runtime SnapshotProvider
}

func NewScheduleHandler(configs configs.Configs, runtime SnapshotProvider) ScheduleHandler {
	return &schedule{
		configs: configs,
		runtime: runtime,
	}
}

func (s schedule) GetSchedule(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	snapshot := s.runtime.Snapshot()
	resBody := dtos.ScheduleResponse{
		CivilDate: snapshot.CivilDate,
		Hijri:     toHijriResponse(snapshot.Hijri),
		IsRamadan: snapshot.IsRamadan,
		Prayers:   toPrayerResponses(snapshot.Display),
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got schedule")
}

func (s schedule) GetNextPrayer(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	snapshot := s.runtime.Snapshot()
	if snapshot.Next == nil {
		logger.Error().Err(errors.New("no upcoming prayer in today's or tomorrow's schedule")).Caller().Int("status_code", http.StatusNotFound).Msg("next prayer not found")
		http.Error(res, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	resBody := dtos.NextPrayerResponse{
		Prayer:     toPrayerResponse(snapshot.Next.Prayer),
		IsTomorrow: snapshot.Next.IsTomorrow,
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got next prayer")
}

func (s schedule) GetStatus(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	snapshot := s.runtime.Snapshot()
	resBody := dtos.StatusResponse{
		CivilDate: snapshot.CivilDate,
	}

	if snapshot.Current != nil {
		current := toPrayerResponse(*snapshot.Current)
		resBody.Current = &current
		resBody.Phase = string(snapshot.Phase)
		resBody.IqamahCountdown = prayer.IqamahCountdown(*snapshot.Current, snapshot.GeneratedAt)
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got prayer status")
}

func (s schedule) PreviewSchedule(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	var reqBody dtos.PreviewRequest
	if err := httputil.DecodeAndValidate(req, s.configs.Validate, &reqBody); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid request body")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, reqBody.Date)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid date")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	prayers, err := prayer.Build(date, prayer.BuildParams{
		Latitude:       reqBody.Latitude,
		Longitude:      reqBody.Longitude,
		FajrAngle:      reqBody.FajrAngle,
		IshaAngle:      reqBody.IshaAngle,
		UTCOffsetHours: reqBody.UTCOffset,
	})

	if err != nil {
		if errors.Is(err, astro.ErrPolarLatitude) {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusUnprocessableEntity).Msg("schedule undefined for coordinates")
			http.Error(res, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		} else {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to build preview schedule")
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	resBody := dtos.ScheduleResponse{
		CivilDate: reqBody.Date,
		Hijri:     toHijriResponse(astro.ToHijri(date)),
		IsRamadan: astro.IsRamadan(date),
		Prayers:   toPrayerResponses(prayers),
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully previewed schedule")
}

func toPrayerResponse(p prayer.Prayer) dtos.PrayerResponse {
	return dtos.PrayerResponse{
		Name:       p.Name,
		AdhanTime:  p.AdhanTime,
		IqamahTime: p.IqamahTime,
		Status:     string(p.Status),
		Countdown:  p.Countdown,
	}
}

func toPrayerResponses(prayers []prayer.Prayer) []dtos.PrayerResponse {
	resBody := make([]dtos.PrayerResponse, 0, len(prayers))
	for _, p := range prayers {
		resBody = append(resBody, toPrayerResponse(p))
	}

	return resBody
}

func toHijriResponse(h astro.HijriDate) dtos.HijriResponse {
	return dtos.HijriResponse{
		Year:      h.Year,
		Month:     h.Month,
		Day:       h.Day,
		MonthName: h.MonthName(),
	}
}
