package notifier

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors shared by every Notifier it is passed to.
// A nil *Metrics records nothing.
type Metrics struct {
	published     *prometheus.CounterVec
	failures      *prometheus.CounterVec
	subscriptions *prometheus.GaugeVec
	perEvent      bool
}

type MetricsOption func(*Metrics)

// PerEvent adds an event label to the publish and failure counters. Every
// distinct event name becomes a separate series, so only enable it when the
// set of event names is fixed.
func PerEvent() MetricsOption {
	return func(m *Metrics) {
		m.perEvent = true
	}
}

// NewMetrics builds collectors labelled by subject name. Publish and failure
// counters carry an event label only with PerEvent.
func NewMetrics(namespace string, opts ...MetricsOption) *Metrics {
	m := &Metrics{}
	for _, opt := range opts {
		opt(m)
	}
	counterLabels := []string{"subject"}
	if m.perEvent {
		counterLabels = append(counterLabels, "event")
	}
	m.published = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "published_total",
			Help:      "Total number of published events",
		},
		counterLabels,
	)
	m.failures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "handler_failures_total",
			Help:      "Total number of handler invocations that returned an error",
		},
		counterLabels,
	)
	m.subscriptions = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "subscriptions",
			Help:      "Registered handlers",
		},
		[]string{"subject"},
	)
	return m
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.published, m.failures, m.subscriptions}
}

func (m *Metrics) Register(registerer prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := registerer.Register(c); err != nil {
			return errors.Wrap(err, "notifier: unable to register metrics")
		}
	}
	return nil
}

func (m *Metrics) MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(m.Collectors()...)
}

func (m *Metrics) subscribed(subject string) {
	if m == nil {
		return
	}
	m.subscriptions.WithLabelValues(subject).Inc()
}

func (m *Metrics) unsubscribed(subject string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.subscriptions.WithLabelValues(subject).Sub(float64(count))
}

func (m *Metrics) publishedEvent(subject, event string) {
	if m == nil {
		return
	}
	m.published.WithLabelValues(m.counterLabels(subject, event)...).Inc()
}

func (m *Metrics) failed(subject, event string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(m.counterLabels(subject, event)...).Inc()
}

func (m *Metrics) counterLabels(subject, event string) []string {
	if m.perEvent {
		return []string{subject, event}
	}
	return []string{subject}
}
