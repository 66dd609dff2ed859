package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics cuenta las operaciones de las colecciones por entidad y resultado.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// New registra las métricas en reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "supermarket_entity_operations_total",
			Help: "Total number of entity operations by entity, operation and outcome",
		}, []string{"entity", "operation", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "supermarket_entity_operation_duration_seconds",
			Help:    "Duration of entity operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"entity", "operation"}),
	}
}

// ObserveOperation registra una operación terminada. Es seguro llamarlo con
// un receptor nil.
func (m *Metrics) ObserveOperation(entity, operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(entity, operation, outcome).Inc()
	m.Duration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}
