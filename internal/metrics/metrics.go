package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EngineTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jadwal",
		Subsystem: "engine",
		Name:      "ticks_total",
		Help:      "Total evaluation passes run by the tick loop",
	})

	ScheduleBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jadwal",
		Subsystem: "engine",
		Name:      "schedule_builds_total",
		Help:      "Daily schedule builds by calculation tier",
	}, []string{"tier"})

	TransitionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jadwal",
		Subsystem: "engine",
		Name:      "transition_events_total",
		Help:      "Edge-triggered prayer transition events by type",
	}, []string{"type"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jadwal",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method and path",
	}, []string{"method", "path"})
)

// CountRequests is a chi middleware incrementing the request counter.
func CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		HTTPRequests.WithLabelValues(req.Method, req.URL.Path).Inc()
		next.ServeHTTP(res, req)
	})
}
