package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

const namespace = "launchdash"

// Collector records binder activity on its own registry
type Collector struct {
	registry *prometheus.Registry

	recomputeTotal    *prometheus.CounterVec
	recomputeDuration *prometheus.HistogramVec
	outputRows        *prometheus.GaugeVec
	datasetRows       prometheus.Gauge
}

// New creates a Collector with a fresh registry. Go runtime and process
// collectors are registered alongside the dashboard metrics.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		recomputeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recompute_total",
			Help:      "Number of chart recomputations per output",
		}, []string{"output", "kind"}),
		recomputeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      "Duration of chart recomputations per output",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"output"}),
		outputRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "output_rows",
			Help:      "Rows represented by the latest chart of each output",
		}, []string{"output"}),
		datasetRows: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Number of launch records loaded",
		}),
	}
}

// SetDataset records the size of the loaded dataset
func (c *Collector) SetDataset(ds *model.Dataset) {
	c.datasetRows.Set(float64(ds.Len()))
}

// ObserveRecompute implements interfaces.BindingObserver
func (c *Collector) ObserveRecompute(output types.OutputID, elapsed time.Duration, result *model.ChartResult) {
	kind := ""
	rows := 0
	if result != nil {
		kind = string(result.Kind)
		rows = result.Total()
	}

	c.recomputeTotal.WithLabelValues(output.String(), kind).Inc()
	c.recomputeDuration.WithLabelValues(output.String()).Observe(elapsed.Seconds())
	c.outputRows.WithLabelValues(output.String()).Set(float64(rows))
}

// Handler exposes the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		Registry: c.registry,
	})
}
