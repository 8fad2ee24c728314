package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
)

// Metrics holds the prometheus collectors of the HTTP service.
type Metrics struct {
	registry *prometheus.Registry

	runs          *prometheus.CounterVec
	failures      *prometheus.CounterVec
	avgWaiting    *prometheus.GaugeVec
	avgTurnaround *prometheus.GaugeVec
	utilization   *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_runs_total",
			Help: "Completed simulation runs",
		}, []string{"policy"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_run_failures_total",
			Help: "Simulation runs rejected or aborted",
		}, []string{"policy"}),
		avgWaiting: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_last_avg_waiting_time",
			Help: "Average waiting time of the last run",
		}, []string{"policy"}),
		avgTurnaround: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_last_avg_turnaround_time",
			Help: "Average turnaround time of the last run",
		}, []string{"policy"}),
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_last_cpu_utilization_percent",
			Help: "CPU utilization of the last run",
		}, []string{"policy"}),
	}

	m.registry.MustRegister(
		m.runs,
		m.failures,
		m.avgWaiting,
		m.avgTurnaround,
		m.utilization,
	)
	return m
}

// Observe records a successful run.
func (m *Metrics) Observe(key string, result core.Result) {
	m.runs.WithLabelValues(key).Inc()
	m.avgWaiting.WithLabelValues(key).Set(result.AvgWaitingTime)
	m.avgTurnaround.WithLabelValues(key).Set(result.AvgTurnaroundTime)
	m.utilization.WithLabelValues(key).Set(result.CPUUtilization)
}

// Failed records a run that did not produce a result.
func (m *Metrics) Failed(key string) {
	m.failures.WithLabelValues(key).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
