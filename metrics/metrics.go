// Package metrics exposes simulation counters to Prometheus
package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/orbits/engine"
)

const namespace = "orbits"

// SnapshotSource is the read side of the simulation the collectors scrape
type SnapshotSource interface {
	Snapshot() engine.Snapshot
}

// MetricsCollector owns a private registry so several simulations (and tests) never collide on the default one
type MetricsCollector struct {
	registry *prometheus.Registry
	source   SnapshotSource

	tickDuration prometheus.Histogram
	controls     *prometheus.CounterVec
}

// NewMetricsCollector registers snapshot-backed collectors for src
func NewMetricsCollector(src SnapshotSource) *MetricsCollector {
	m := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		source:   src,
		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tick_duration_seconds",
				Help:      "Wall time spent in one simulation tick",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
		),
		controls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "controls_total",
				Help:      "Control requests by action and outcome",
			},
			[]string{"action", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.tickDuration,
		m.controls,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Simulation steps taken",
		}, func() float64 { return float64(src.Snapshot().Steps) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks taken",
		}, func() float64 { return float64(src.Snapshot().Ticks) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clamped_pairs_total",
			Help:      "Body pairs clamped to the minimum separation",
		}, func() float64 { return float64(src.Snapshot().Clamped) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulated_seconds",
			Help:      "Elapsed simulated time",
		}, func() float64 { return src.Snapshot().Elapsed }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bodies",
			Help:      "Number of simulated bodies",
		}, func() float64 { return float64(src.Snapshot().Bodies) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "momentum_drift",
			Help:      "Relative drift of total momentum since start",
		}, func() float64 { return src.Snapshot().MomentumDrift }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "substeps",
			Help:      "Current sub-step cap",
		}, func() float64 { return float64(src.Snapshot().Substeps) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "step_seconds",
			Help:      "Simulated seconds per step",
		}, func() float64 { return src.Snapshot().StepSeconds }),
	)

	return m
}

// Registry returns the private registry
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// RecordTick observes the wall time of one tick
func (m *MetricsCollector) RecordTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

// RecordControl counts a control request; changed selects the outcome label
func (m *MetricsCollector) RecordControl(action string, changed bool) {
	outcome := "noop"
	if changed {
		outcome = "changed"
	}
	m.controls.WithLabelValues(action, outcome).Inc()
}

// Handler serves the registry in the exposition format
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ServeMetrics serves /metrics on addr until ctx is done
func (m *MetricsCollector) ServeMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Metrics listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
