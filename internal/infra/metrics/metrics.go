// Package metrics exposes scheduling and HTTP metrics in the prometheus
// text format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"shelter-scheduler/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shelter"

type Recorder struct {
	registry *prometheus.Registry

	slotsCreated      prometheus.Counter
	reservations      prometheus.Counter
	rejections        *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
	idempotentReplays prometheus.Counter
	requestDuration   *prometheus.HistogramVec
}

var _ shared.Metrics = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		slotsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_created_total",
			Help:      "Slots created, including every occurrence of a recurring rule.",
		}),
		reservations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Reservations created.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_rejected_total",
			Help:      "Reservation attempts refused, by reason.",
		}, []string{"reason"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_status_transitions_total",
			Help:      "Reservation status changes.",
		}, []string{"from", "to"}),
		idempotentReplays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotent_replays_total",
			Help:      "Reservation requests answered from a stored idempotency key.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.slotsCreated,
		r.reservations,
		r.rejections,
		r.statusTransitions,
		r.idempotentReplays,
		r.requestDuration,
	)
	return r
}

func (r *Recorder) SlotsCreated(n int) {
	r.slotsCreated.Add(float64(n))
}

func (r *Recorder) ReservationCreated() {
	r.reservations.Inc()
}

func (r *Recorder) ReservationRejected(reason string) {
	r.rejections.WithLabelValues(reason).Inc()
}

func (r *Recorder) ReservationStatusChanged(from, to string) {
	r.statusTransitions.WithLabelValues(from, to).Inc()
}

func (r *Recorder) IdempotentReplay() {
	r.idempotentReplays.Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Middleware observes request latency labelled by the matched route, so
// path parameters do not explode the label space.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
