package handlers

import (
	"net/http"
	"time"

	"github.com/masjidia/jadwal-sholat-service/configs"
	"github.com/masjidia/jadwal-sholat-service/internal/astro"
	"github.com/masjidia/jadwal-sholat-service/internal/dtos"
	"github.com/masjidia/jadwal-sholat-service/internal/httputil"
	"github.com/rs/zerolog/log"
)

type CalendarHandler interface {
	GetHijriDate(res http.ResponseWriter, req *http.Request)
}

type calendar struct {
	configs  configs.Configs
	location *time.Location
}

func NewCalendarHandler(configs configs.Configs) CalendarHandler {
	return &calendar{
		configs:  configs,
		location: time.FixedZone("local", int(configs.Env.UTCOffsetHours*3600)),
	}
}

func (c calendar) GetHijriDate(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	date := time.Now().In(c.location)
	if dateString := req.URL.Query().Get("date"); dateString != "" {
		parsed, err := time.Parse(time.DateOnly, dateString)
		if err != nil {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid date query param")
			http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		date = parsed
	}

	hijri := astro.ToHijri(date)
	resBody := dtos.HijriDateResponse{
		CivilDate: date.Format(time.DateOnly),
		Hijri:     toHijriResponse(hijri),
		IsRamadan: astro.IsRamadan(date),
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

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got hijri date")
}
