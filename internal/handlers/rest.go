package handlers

import (
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/masjidia/jadwal-sholat-service/configs"
	"github.com/masjidia/jadwal-sholat-service/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRestHandler(configs configs.Configs, customMiddleware MiddlewareHandler, runtime SnapshotProvider) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.CleanPath)
	router.Use(chiMiddleware.RealIP)
	router.Use(customMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(metrics.CountRequests)
	router.Use(httprate.LimitByIP(100, 1*time.Minute))

	options := cors.Options{
		AllowedOrigins:   strings.Split(configs.Env.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"User-Agent", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "Connection", "Host", "Origin", "Referer", "Authorization"},
		ExposedHeaders:   []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(options))
	router.Use(chiMiddleware.Heartbeat("/ping"))

	router.Handle("/metrics", promhttp.Handler())

	scheduleHandler := NewScheduleHandler(configs, runtime)
	router.Get("/schedule", scheduleHandler.GetSchedule)
	router.Get("/schedule/next", scheduleHandler.GetNextPrayer)
	router.Post("/schedule/preview", scheduleHandler.PreviewSchedule)
	router.Get("/status", scheduleHandler.GetStatus)

	calendarHandler := NewCalendarHandler(configs)
	router.Get("/calendar/hijri", calendarHandler.GetHijriDate)

	return router
}
