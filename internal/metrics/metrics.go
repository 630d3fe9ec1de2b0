package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the weather screen.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	forecastFetches *prometheus.CounterVec
	forecastDays    prometheus.Gauge
	screenMounts    *prometheus.CounterVec
	alarmEvents     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		forecastFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daycast",
			Name:      "forecast_fetches_total",
			Help:      "One Call forecast requests by outcome.",
		}, []string{"outcome"}),
		forecastDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "daycast",
			Name:      "forecast_days",
			Help:      "Number of daily forecasts in the last successful fetch.",
		}),
		screenMounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daycast",
			Name:      "screen_mounts_total",
			Help:      "Screen mount chains by final status.",
		}, []string{"status"}),
		alarmEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daycast",
			Name:      "alarm_events_total",
			Help:      "Alarm timer transitions.",
		}, []string{"event"}),
	}
	reg.MustRegister(m.forecastFetches, m.forecastDays, m.screenMounts, m.alarmEvents)
	return m
}

// ObserveFetch records a forecast fetch outcome ("ok", "network", "decode", ...)
func (m *Metrics) ObserveFetch(outcome string, days int) {
	if m == nil {
		return
	}
	m.forecastFetches.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.forecastDays.Set(float64(days))
	}
}

func (m *Metrics) ObserveMount(status string) {
	if m == nil {
		return
	}
	m.screenMounts.WithLabelValues(status).Inc()
}

// ObserveAlarm records "armed", "replaced", "disarmed", "fired" or "cancelled"
func (m *Metrics) ObserveAlarm(event string) {
	if m == nil {
		return
	}
	m.alarmEvents.WithLabelValues(event).Inc()
}
