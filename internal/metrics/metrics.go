// Package metrics tracks counters, gauges and timings for a scrape run.
//
// Metrics are kept in a private Prometheus registry so that each run (and each test)
// starts from zero. Counters and gauges are keyed by a free-form name label, timings
// are recorded in a histogram keyed by operation. A run can dump the registry in the
// node-exporter textfile format with WriteTextfile, and GetSnapshot returns a plain
// map suitable for a structured log line.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "au_courses"

// Metrics tracks operational metrics. All operations are thread-safe.
type Metrics struct {
	registry *prometheus.Registry
	counters *prometheus.CounterVec
	gauges   *prometheus.GaugeVec
	timings  *prometheus.HistogramVec
}

// New creates a metrics tracker backed by its own registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Count of scrape events by name.",
		}, []string{"name"}),
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "value",
			Help:      "Point-in-time values of the last scrape.",
		}, []string{"name"}),
		timings: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Duration of scrape operations.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"operation"}),
	}

	m.registry.MustRegister(m.counters, m.gauges, m.timings)
	return m
}

// IncrCounter increments a counter by 1
func (m *Metrics) IncrCounter(name string) {
	m.counters.WithLabelValues(name).Inc()
}

// AddCounter adds a non-negative value to a counter
func (m *Metrics) AddCounter(name string, value float64) {
	m.counters.WithLabelValues(name).Add(value)
}

// SetGauge sets a gauge, overwriting any previous value
func (m *Metrics) SetGauge(name string, value float64) {
	m.gauges.WithLabelValues(name).Set(value)
}

// RecordTiming records a duration for an operation
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.timings.WithLabelValues(name).Observe(duration.Seconds())
}

// GetSnapshot returns the current values as a map containing:
//   - "counters": counter name to value
//   - "gauges": gauge name to value
//   - "timings": operation to count, total and average
func (m *Metrics) GetSnapshot() (map[string]interface{}, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	counters := make(map[string]float64)
	gauges := make(map[string]float64)
	timings := make(map[string]map[string]interface{})

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			label := labelValue(metric)
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				counters[label] = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				gauges[label] = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				count := h.GetSampleCount()
				total := time.Duration(h.GetSampleSum() * float64(time.Second))
				entry := map[string]interface{}{
					"count": count,
					"total": total.String(),
				}
				if count > 0 {
					entry["average"] = (total / time.Duration(count)).String()
				}
				timings[label] = entry
			}
		}
	}

	return map[string]interface{}{
		"counters": counters,
		"gauges":   gauges,
		"timings":  timings,
	}, nil
}

// WriteTextfile writes all metrics to path in the Prometheus text format
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

// labelValue returns the value of the single label every metric here carries
func labelValue(metric *dto.Metric) string {
	for _, lp := range metric.GetLabel() {
		return lp.GetValue()
	}
	return ""
}
