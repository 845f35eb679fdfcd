package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Generation outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder holds the generation pipeline instruments. A nil *Recorder records nothing.
type Recorder struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	rejected    *prometheus.CounterVec
	confidence  *prometheus.CounterVec
}

// New creates the instruments and registers them with reg
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aitools_generations_total",
				Help: "Completed generation actions by outcome",
			},
			[]string{"action", "mode", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aitools_generation_duration_seconds",
				Help:    "Duration of the outbound generation call",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
			},
			[]string{"action", "mode"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aitools_rejected_requests_total",
				Help: "Requests rejected before any outbound call",
			},
			[]string{"action", "reason"},
		),
		confidence: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aitools_structured_results_total",
				Help: "Structured results by how they were obtained",
			},
			[]string{"action", "confidence"},
		),
	}

	for _, c := range []prometheus.Collector{r.generations, r.duration, r.rejected, r.confidence} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew is New that panics on registration conflicts
func MustNew(reg prometheus.Registerer) *Recorder {
	r, err := New(reg)
	if err != nil {
		panic(err)
	}
	return r
}

// ObserveGeneration records one finished action
func (r *Recorder) ObserveGeneration(action, mode, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(action, mode, outcome).Inc()
	r.duration.WithLabelValues(action, mode).Observe(d.Seconds())
}

// Rejected records a request refused before generation
func (r *Recorder) Rejected(action, reason string) {
	if r == nil {
		return
	}
	r.rejected.WithLabelValues(action, reason).Inc()
}

// StructuredResult records the confidence of a structured result
func (r *Recorder) StructuredResult(action, confidence string) {
	if r == nil {
		return
	}
	r.confidence.WithLabelValues(action, confidence).Inc()
}
