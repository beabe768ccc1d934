// Package metrics exposes the service-wide Prometheus instruments
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus instruments for the service
type Metrics struct {
	PeopleCreated   prometheus.Counter
	CreateConflicts prometheus.Counter
	Searches        prometheus.Counter

	// Per-route request latency, labelled method/route/status
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all instruments on the default registry
func New() *Metrics { return NewWith(prometheus.DefaultRegisterer) }

// NewWith registers all instruments on reg, useful for tests
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PeopleCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "peopledex_people_created_total",
			Help: "Total number of people records created",
		}),
		CreateConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "peopledex_create_conflicts_total",
			Help: "Total creates rejected due to a nickname uniqueness conflict",
		}),
		Searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "peopledex_searches_total",
			Help: "Total term searches served",
		}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "peopledex_http_request_duration_seconds",
			Help:    "HTTP request duration by method, route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

// IncrementPeopleCreated records a successful create
func (m *Metrics) IncrementPeopleCreated() {
	if m != nil {
		m.PeopleCreated.Inc()
	}
}

// IncrementCreateConflicts records a create rejected as a duplicate
func (m *Metrics) IncrementCreateConflicts() {
	if m != nil {
		m.CreateConflicts.Inc()
	}
}

// IncrementSearches records a served search
func (m *Metrics) IncrementSearches() {
	if m != nil {
		m.Searches.Inc()
	}
}

// ObserveHTTPRequest records one request's latency
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
	}
}

// Middleware instruments every request with the HTTPDuration histogram
// the route label uses the chi route pattern so ids do not explode cardinality
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			m.ObserveHTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler { return promhttp.Handler() }

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
