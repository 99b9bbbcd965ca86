// Package vkmetrics exports VK method call metrics to Prometheus.
package vkmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vkbind/vk/pkg/vkapi"
)

const (
	// CallsTotalName is the name of the calls counter.
	CallsTotalName = "vkapi_calls_total"

	// CallDurationName is the name of the call duration summary.
	CallDurationName = "vkapi_call_duration_seconds"
)

// Collector is a [vkapi.Observer] that updates Prometheus metrics.
type Collector struct {
	calls    *prometheus.CounterVec
	duration *prometheus.SummaryVec
}

var _ vkapi.Observer = &Collector{}

// summaryObjectives returns the summary objectives for the duration summary.
func summaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.5:  0.010, // 0.490 <= φ <= 0.510
		0.9:  0.010, // 0.899 <= φ <= 0.901
		0.99: 0.001, // 0.989 <= φ <= 0.991
	}
}

// New creates a new [*Collector] and registers its metrics with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: CallsTotalName,
			Help: "Total number of VK method calls by method and outcome",
		}, []string{"method", "outcome"}),

		duration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       CallDurationName,
			Help:       "Summarizes the time to complete a VK method call (in seconds)",
			Objectives: summaryObjectives(),
		}, []string{"method"}),
	}
	for _, collector := range []prometheus.Collector{c.calls, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Outcome returns the outcome label for the given error: "ok" on
// success and the [vkapi.ErrorKind] otherwise.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := vkapi.ErrorKindOf(err); kind != "" {
		return string(kind)
	}
	return "unknown"
}

// OnCall implements vkapi.Observer.
func (c *Collector) OnCall(method string, elapsed time.Duration, err error) {
	c.calls.WithLabelValues(method, Outcome(err)).Inc()
	c.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
