package dtos

type PrayerResponse struct {
	Name       string `json:"name"`
	AdhanTime  string `json:"adhan_time"`
	IqamahTime string `json:"iqamah_time,omitempty"`
	Status     string `json:"status"`
	Countdown  string `json:"countdown,omitempty"`
}

type ScheduleResponse struct {
	CivilDate string           `json:"civil_date"`
	Hijri     HijriResponse    `json:"hijri"`
	IsRamadan bool             `json:"is_ramadan"`
	Prayers   []PrayerResponse `json:"prayers"`
}

type NextPrayerResponse struct {
	Prayer     PrayerResponse `json:"prayer"`
	IsTomorrow bool           `json:"is_tomorrow"`
}

type StatusResponse struct {
	CivilDate       string          `json:"civil_date"`
	Current         *PrayerResponse `json:"current,omitempty"`
	Phase           string          `json:"phase,omitempty"`
	IqamahCountdown string          `json:"iqamah_countdown,omitempty"`
}

type PreviewRequest struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	FajrAngle float64 `json:"fajr_angle" validate:"required,gt=0,lte=24"`
	IshaAngle float64 `json:"isha_angle" validate:"required,gt=0,lte=24"`
	UTCOffset float64 `json:"utc_offset" validate:"gte=-12,lte=14"`
}
