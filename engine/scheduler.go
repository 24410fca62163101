package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orbits/core"
)

// Scheduler emits ticks on a fixed real-time interval with drift correction
// Ticks coalesce: a consumer that falls behind receives at most one pending tick
type Scheduler struct {
	interval time.Duration
	isPaused *atomic.Bool

	ticks     chan struct{}
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScheduler creates a scheduler; isPaused may be nil
// While paused the scheduler sleeps twice the interval between checks and emits nothing
func NewScheduler(interval time.Duration, isPaused *atomic.Bool) *Scheduler {
	if isPaused == nil {
		isPaused = &atomic.Bool{}
	}
	return &Scheduler{
		interval: interval,
		isPaused: isPaused,
		ticks:    make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

// C returns the tick channel
func (sc *Scheduler) C() <-chan struct{} {
	return sc.ticks
}

// Count returns the number of ticks emitted
func (sc *Scheduler) Count() uint64 {
	return sc.tickCount.Load()
}

// Start begins the scheduler loop
func (sc *Scheduler) Start() {
	if sc.running.CompareAndSwap(false, true) {
		sc.wg.Add(1)
		core.Go(sc.loop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
// A stopped scheduler cannot be restarted
func (sc *Scheduler) Stop() {
	if sc.running.CompareAndSwap(true, false) {
		sc.stopOnce.Do(func() { close(sc.stopChan) })
		sc.wg.Wait()
	}
}

func (sc *Scheduler) loop() {
	defer sc.wg.Done()

	deadline := time.Now().Add(sc.interval)
	timer := time.NewTimer(sc.interval)
	defer timer.Stop()

	for {
		select {
		case <-sc.stopChan:
			return
		case <-timer.C:
		}

		now := time.Now()
		if sc.isPaused.Load() {
			deadline = now.Add(sc.interval)
			timer.Reset(sc.interval * 2)
			continue
		}

		select {
		case sc.ticks <- struct{}{}:
			sc.tickCount.Add(1)
		default:
		}

		deadline = deadline.Add(sc.interval)
		// Resync when more than two intervals behind instead of bursting
		if now.Sub(deadline) > sc.interval*2 {
			deadline = now.Add(sc.interval)
		}
		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
