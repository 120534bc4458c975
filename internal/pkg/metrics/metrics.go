package metrics

import (
	"style-weaver-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gobreaker "github.com/sony/gobreaker/v2"
)

const namespace = "styleweaver"

// Metrics records pipeline stage outcomes and breaker states on its own registry.
type Metrics struct {
	registry         *prometheus.Registry
	stageTotal       *prometheus.CounterVec
	pipelineDuration *prometheus.HistogramVec
	breakerState     *prometheus.GaugeVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		stageTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_total",
			Help:      "Pipeline stage results by stage and status.",
		}, []string{"stage", "status"}),
		pipelineDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Time to assemble a style board.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"complete"}),
		breakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		}, []string{"breaker"}),
	}
}

func (m *Metrics) ObserveStage(stage string, report entity.StageReport) {
	m.stageTotal.WithLabelValues(stage, string(report.Status)).Inc()
}

func (m *Metrics) ObserveRun(stages entity.BoardStages, seconds float64) {
	complete := "false"
	if stages.Trend.OK() && stages.Wardrobe.OK() && stages.Image.OK() {
		complete = "true"
	}
	m.pipelineDuration.WithLabelValues(complete).Observe(seconds)
}

// BreakerStateChanged matches resilience.Config.OnStateChange.
func (m *Metrics) BreakerStateChanged(name string, _, to gobreaker.State) {
	m.breakerState.WithLabelValues(name).Set(float64(to))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
