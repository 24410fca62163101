package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orbits/engine"
)

type fakeSource struct {
	snap engine.Snapshot
}

func (f *fakeSource) Snapshot() engine.Snapshot { return f.snap }

func TestCollectorsReadSnapshot(t *testing.T) {
	src := &fakeSource{snap: engine.Snapshot{
		Steps:         12,
		Ticks:         3,
		Clamped:       1,
		Elapsed:       86400,
		Bodies:        15,
		MomentumDrift: 1e-12,
		Substeps:      50,
		StepSeconds:   3600,
	}}
	m := NewMetricsCollector(src)

	expected := `
# HELP orbits_steps_total Simulation steps taken
# TYPE orbits_steps_total counter
orbits_steps_total 12
# HELP orbits_bodies Number of simulated bodies
# TYPE orbits_bodies gauge
orbits_bodies 15
# HELP orbits_simulated_seconds Elapsed simulated time
# TYPE orbits_simulated_seconds gauge
orbits_simulated_seconds 86400
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"orbits_steps_total", "orbits_bodies", "orbits_simulated_seconds"))

	// Values follow the source on every scrape
	src.snap.Steps = 20
	n, err := testutil.GatherAndCount(m.Registry(), "orbits_steps_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP orbits_steps_total Simulation steps taken
# TYPE orbits_steps_total counter
orbits_steps_total 20
`), "orbits_steps_total"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsCollector(&fakeSource{})
		NewMetricsCollector(&fakeSource{})
	})
}

func TestRecordControl(t *testing.T) {
	m := NewMetricsCollector(&fakeSource{})
	m.RecordControl("zoom_in", true)
	m.RecordControl("zoom_in", true)
	m.RecordControl("zoom_in", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.controls.WithLabelValues("zoom_in", "changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.controls.WithLabelValues("zoom_in", "noop")))
}

func TestRecordTick(t *testing.T) {
	m := NewMetricsCollector(&fakeSource{})
	m.RecordTick(2 * time.Millisecond)
	m.RecordTick(3 * time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.tickDuration))
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "orbits_tick_duration_seconds" {
			assert.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
			return
		}
	}
	t.Fatal("tick histogram not gathered")
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetricsCollector(&fakeSource{snap: engine.Snapshot{Bodies: 2}})
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(strings.Builder)
	_, err = io.Copy(buf, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "orbits_bodies 2")
}

func TestServeMetricsStopsOnCancel(t *testing.T) {
	// Reserve a free port, then release it for the server
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	m := NewMetricsCollector(&fakeSource{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.ServeMetrics(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
