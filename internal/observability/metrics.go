package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"go.ngs.io/r134a-api/internal/domain"
)

// Metrics holds the Prometheus collectors for the calculation endpoint.
type Metrics struct {
	Calculations    *prometheus.CounterVec // labels: outcome={ok,domain_error,input_error,computation_error,unknown_error}
	Extrapolations  prometheus.Counter
	RequestDuration *prometheus.HistogramVec // labels: path
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "r134a",
			Name:      "calculations_total",
			Help:      "Saturation calculations by outcome.",
		}, []string{"outcome"}),
		Extrapolations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "r134a",
			Name:      "extrapolations_total",
			Help:      "Calculations outside the fitted temperature band.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "r134a",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP handler duration in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"path"}),
	}

	reg.MustRegister(m.Calculations, m.Extrapolations, m.RequestDuration)

	return m
}

// ObserveCalculation records the outcome of one calculation. A nil err with
// extrapolated set also bumps the extrapolation counter.
func (m *Metrics) ObserveCalculation(err error, extrapolated bool) {
	if m == nil {
		return
	}
	if err != nil {
		m.Calculations.WithLabelValues(domain.KindOf(err).String()).Inc()
		return
	}
	m.Calculations.WithLabelValues("ok").Inc()
	if extrapolated {
		m.Extrapolations.Inc()
	}
}
