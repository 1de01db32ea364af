// Package metrics exposes Prometheus collectors for store activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder instruments dispatch traffic and subscriber churn.
type Recorder struct {
	dispatches *prometheus.CounterVec
	duration   prometheus.Histogram
	subs       prometheus.Gauge
}

// New registers the collectors with reg and returns the recorder.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lattice_dispatch_total",
			Help: "Actions dispatched, by instance and action type.",
		}, []string{"instance", "type"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lattice_dispatch_seconds",
			Help:    "Wall time spent applying one action to the reducer tree.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		subs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lattice_subscribers",
			Help: "Active store change listeners.",
		}),
	}
}

// Dispatch records one applied action.
func (r *Recorder) Dispatch(instanceID, actionType string, seconds float64) {
	if r == nil {
		return
	}
	if instanceID == "" {
		instanceID = "none"
	}
	r.dispatches.WithLabelValues(instanceID, actionType).Inc()
	r.duration.Observe(seconds)
}

// SetSubscribers updates the listener gauge.
func (r *Recorder) SetSubscribers(n int) {
	if r == nil {
		return
	}
	r.subs.Set(float64(n))
}
