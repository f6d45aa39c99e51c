// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultInterval is the delay between ticks, about one frame at
	// 60 Hz.
	DefaultInterval = 16 * time.Millisecond
	// DefaultCycle is the nominal length of one animation cycle.
	DefaultCycle = 2000 * time.Millisecond
)

// Ticker delivers ticks at a fixed interval. Ticks are produced on a
// background goroutine and executed through a Queue, so the tick
// function always runs on the queue owner's goroutine.
//
// At most one tick is outstanding: if the owner has not drained the
// previous tick, the next one is dropped rather than queued.
//
// The cycle only shapes the fraction handed to the tick function. Ticks
// arrive every interval whatever the cycle.
type Ticker struct {
	queue    *Queue
	interval time.Duration
	cycle    time.Duration

	mu sync.Mutex
	// gen identifies the current run. Ticks carry the generation they
	// were posted under and are ignored once it changes.
	gen    uint64
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewTicker returns a stopped ticker posting to q. Zero durations select
// DefaultInterval and DefaultCycle.
func NewTicker(q *Queue, interval, cycle time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if cycle <= 0 {
		cycle = DefaultCycle
	}
	return &Ticker{queue: q, interval: interval, cycle: cycle}
}

// Start begins delivering ticks to fn, restarting the ticker if it is
// running. The fraction passed to fn is the linear progress through
// the current cycle, in [0, 1).
func (t *Ticker) Start(fn func(fraction float32)) {
	t.Stop()
	t.mu.Lock()
	t.gen++
	gen := t.gen
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	t.cancel, t.group = cancel, g
	t.mu.Unlock()

	// queued is set while a tick of this run waits in the queue.
	var queued atomic.Bool
	start := time.Now()
	g.Go(func() error {
		tk := time.NewTicker(t.interval)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-tk.C:
				if !queued.CompareAndSwap(false, true) {
					continue
				}
				frac := t.fraction(now.Sub(start))
				t.queue.Post(func() {
					queued.Store(false)
					if t.current(gen) {
						fn(frac)
					}
				})
			}
		}
	})
}

// Stop halts the ticker and waits for its goroutine to exit. Ticks
// already posted but not yet drained are discarded. Stop is a no-op on
// a stopped ticker.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, g := t.cancel, t.group
	t.cancel, t.group = nil, nil
	t.gen++
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	g.Wait()
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Interval returns the delay between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

func (t *Ticker) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil && t.gen == gen
}

func (t *Ticker) fraction(elapsed time.Duration) float32 {
	return float32(elapsed%t.cycle) / float32(t.cycle)
}
