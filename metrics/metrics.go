// Package metrics exports layout solver instrumentation to Prometheus.
//
// A Collector is both a layout.Observer and a prometheus.Collector:
//
//	c := metrics.NewCollector("ui")
//	prometheus.MustRegister(c)
//	solver := layout.NewSolver(layout.WithObserver(c))
package metrics

import (
	"github.com/gogpu/layout"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records solver passes and container placements.
type Collector struct {
	passes     prometheus.Counter
	duration   prometheus.Histogram
	nodes      prometheus.Gauge
	hidden     prometheus.Gauge
	levels     prometheus.Gauge
	placements *prometheus.CounterVec
	placed     *prometheus.HistogramVec
}

var (
	_ layout.Observer      = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// NewCollector returns a Collector whose metric names are prefixed with
// namespace, if non-empty.
func NewCollector(namespace string) *Collector {
	return &Collector{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_passes_total",
			Help:      "Total number of completed layout passes.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_pass_duration_seconds",
			Help:      "Duration of layout passes.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "layout_pass_nodes",
			Help:      "Number of nodes visited by the last pass.",
		}),
		hidden: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "layout_pass_hidden_nodes",
			Help:      "Number of nodes left out of a range window in the last pass.",
		}),
		levels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "layout_pass_depth",
			Help:      "Depth of the tree in the last pass.",
		}),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_placements_total",
			Help:      "Total number of container steps by layout kind.",
		}, []string{"layout"}),
		placed: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_placed_items",
			Help:      "Children placed per container step by layout kind.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"layout"}),
	}
}

// ObservePass implements layout.Observer.
func (c *Collector) ObservePass(stats layout.PassStats) {
	c.passes.Inc()
	c.duration.Observe(stats.Duration.Seconds())
	c.nodes.Set(float64(stats.Nodes))
	c.hidden.Set(float64(stats.Hidden))
	c.levels.Set(float64(stats.Levels))
}

// ObservePlacement implements layout.Observer.
func (c *Collector) ObservePlacement(kind string, placed int) {
	c.placements.WithLabelValues(kind).Inc()
	c.placed.WithLabelValues(kind).Observe(float64(placed))
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.passes, c.duration, c.nodes, c.hidden, c.levels, c.placements, c.placed,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.collectors() {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.collectors() {
		m.Collect(ch)
	}
}
