// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"sync"
	"testing"
	"time"
)

func TestQueueOrder(t *testing.T) {
	wakeups := 0
	q := NewQueue(func() { wakeups++ })
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		q.Post(func() { got = append(got, i) })
	}
	if wakeups != 3 {
		t.Errorf("got %d wakeups, want 3", wakeups)
	}
	if n := q.Drain(); n != 3 {
		t.Errorf("drained %d tasks, want 3", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got order %v", got)
		}
	}
	if n := q.Drain(); n != 0 {
		t.Errorf("second drain ran %d tasks", n)
	}
}

func TestQueuePostDuringDrain(t *testing.T) {
	q := NewQueue(nil)
	ran := 0
	q.Post(func() {
		ran++
		q.Post(func() { ran++ })
	})
	if n := q.Drain(); n != 1 || ran != 1 {
		t.Fatalf("first drain: n=%d ran=%d", n, ran)
	}
	if q.Len() != 1 {
		t.Fatalf("nested task not pending")
	}
	if n := q.Drain(); n != 1 || ran != 2 {
		t.Fatalf("second drain: n=%d ran=%d", n, ran)
	}
}

func TestQueueConcurrentPost(t *testing.T) {
	q := NewQueue(nil)
	var wg sync.WaitGroup
	const goroutines, posts = 8, 100
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < posts; i++ {
				q.Post(func() {})
			}
		}()
	}
	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
loop:
	for {
		select {
		case <-done:
			break loop
		default:
			total += q.Drain()
		}
	}
	total += q.Drain()
	if total != goroutines*posts {
		t.Errorf("drained %d tasks, want %d", total, goroutines*posts)
	}
}

// waitTick blocks until the queue has a task or the timeout expires.
func waitTick(t *testing.T, posted <-chan struct{}) {
	t.Helper()
	select {
	case <-posted:
	case <-time.After(5 * time.Second):
		t.Fatal("no tick posted")
	}
}

func TestTickerDelivers(t *testing.T) {
	posted := make(chan struct{}, 1)
	q := NewQueue(func() {
		select {
		case posted <- struct{}{}:
		default:
		}
	})
	tk := NewTicker(q, time.Millisecond, 0)
	ticks := 0
	tk.Start(func(frac float32) {
		if frac < 0 || frac >= 1 {
			t.Errorf("fraction %v out of range", frac)
		}
		ticks++
	})
	defer tk.Stop()
	if !tk.Running() {
		t.Fatal("ticker not running after Start")
	}
	waitTick(t, posted)
	q.Drain()
	if ticks != 1 {
		t.Errorf("got %d ticks, want 1", ticks)
	}
}

func TestTickerCoalesces(t *testing.T) {
	posted := make(chan struct{}, 1)
	q := NewQueue(func() {
		select {
		case posted <- struct{}{}:
		default:
		}
	})
	tk := NewTicker(q, time.Millisecond, 0)
	tk.Start(func(float32) {})
	waitTick(t, posted)
	// Give the ticker time to fire again without draining.
	time.Sleep(20 * time.Millisecond)
	tk.Stop()
	if n := q.Len(); n != 1 {
		t.Errorf("got %d pending ticks, want 1", n)
	}
}

func TestTickerNoTickAfterStop(t *testing.T) {
	posted := make(chan struct{}, 1)
	q := NewQueue(func() {
		select {
		case posted <- struct{}{}:
		default:
		}
	})
	tk := NewTicker(q, time.Millisecond, 0)
	ticks := 0
	tk.Start(func(float32) { ticks++ })
	waitTick(t, posted)
	tk.Stop()
	if tk.Running() {
		t.Error("ticker running after Stop")
	}
	q.Drain()
	time.Sleep(10 * time.Millisecond)
	q.Drain()
	if ticks != 0 {
		t.Errorf("got %d ticks after Stop", ticks)
	}
	// Stop is idempotent.
	tk.Stop()
}

func TestTickerRestart(t *testing.T) {
	posted := make(chan struct{}, 1)
	q := NewQueue(func() {
		select {
		case posted <- struct{}{}:
		default:
		}
	})
	tk := NewTicker(q, time.Millisecond, 0)
	first, second := 0, 0
	tk.Start(func(float32) { first++ })
	waitTick(t, posted)
	tk.Start(func(float32) { second++ })
	defer tk.Stop()
	// The tick posted by the first run is stale.
	q.Drain()
	waitTick(t, posted)
	q.Drain()
	if first != 0 {
		t.Errorf("stale run delivered %d ticks", first)
	}
	if second == 0 {
		t.Error("restarted ticker delivered no ticks")
	}
}

func TestTickerDefaults(t *testing.T) {
	tk := NewTicker(NewQueue(nil), 0, 0)
	if got := tk.Interval(); got != DefaultInterval {
		t.Errorf("interval: got %v, want %v", got, DefaultInterval)
	}
	if got := tk.fraction(DefaultCycle + DefaultCycle/4); got != 0.25 {
		t.Errorf("fraction: got %v, want 0.25", got)
	}
}

func TestTickerFraction(t *testing.T) {
	tk := NewTicker(NewQueue(nil), 0, 400*time.Millisecond)
	tests := []struct {
		elapsed time.Duration
		want    float32
	}{
		{0, 0},
		{100 * time.Millisecond, 0.25},
		{300 * time.Millisecond, 0.75},
		{400 * time.Millisecond, 0},
		{500 * time.Millisecond, 0.25},
	}
	for _, test := range tests {
		if got := tk.fraction(test.elapsed); got != test.want {
			t.Errorf("fraction(%v) = %v, want %v", test.elapsed, got, test.want)
		}
	}
}
