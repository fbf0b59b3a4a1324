// Package metrics owns every Prometheus collector exported by the API.
// Collectors register with the default registry on package init.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hms"

// ── HTTP ──────────────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP verb
//   - route: the registered route pattern, e.g. "/api/beds/:id"
//   - code: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by route and status code.",
	},
	[]string{"method", "route", "code"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from routing to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Resources ─────────────────────────────────────────────────────────────────

// RecordMutationsTotal counts successful writes.
// Labels:
//   - resource: route segment of the resource, e.g. "blood-bags"
//   - operation: "create", "update", "delete", "archive" or "restore"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful record writes, by resource and operation.",
	},
	[]string{"resource", "operation"},
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// AuthEventsTotal counts register/login/logout attempts.
// Labels:
//   - event: "register", "login" or "logout"
//   - result: "success" or "failure"
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication events, by outcome.",
	},
	[]string{"event", "result"},
)

// ── AI gateway ────────────────────────────────────────────────────────────────

// AIRequestsTotal counts gateway invocations.
// Labels:
//   - feature: AI route name, e.g. "sepsis-predictor"
//   - status: "success", "mock" or "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of AI gateway requests, by feature and result status.",
	},
	[]string{"feature", "status"},
)

var AIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Time spent waiting on the AI gateway.",
		Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30},
	},
	[]string{"feature"},
)

// Middleware records request count and latency per matched route. Errors are
// rendered here through the echo error handler so the recorded code is the one sent.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
