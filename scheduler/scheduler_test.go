package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

const immediateTaskCount = 50000

// TestRunAndRepeat exercises one repeating task (shaped like
// agentserver.Server's idle-session sweep) running alongside a burst of
// immediate tasks submitted with Run.
func TestRunAndRepeat(t *testing.T) {
	var immediate, sweeps int64

	Repeat(func() {
		atomic.AddInt64(&sweeps, 1)
	}, time.Millisecond)

	for i := 0; i < immediateTaskCount; i++ {
		Run(func() { atomic.AddInt64(&immediate, 1) })
	}
	time.Sleep(time.Millisecond) // wait for the burst to drain

	if atomic.LoadInt64(&immediate) != immediateTaskCount {
		t.Errorf("immediate tasks ran %d times, want %d", immediate, immediateTaskCount)
	}
	if atomic.LoadInt64(&sweeps) == 0 {
		t.Error("repeating sweep task never fired")
	}
}

// TestRepeatFiresOnEveryInterval checks that a repeating task keeps
// getting rescheduled rather than firing once and stopping, the
// behavior the idle-session sweep depends on to keep reporting idle
// sessions after its first run.
func TestRepeatFiresOnEveryInterval(t *testing.T) {
	var fires int64

	Repeat(func() {
		atomic.AddInt64(&fires, 1)
	}, 2*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	if got := atomic.LoadInt64(&fires); got < 3 {
		t.Errorf("repeating task fired %d times in 20ms at a 2ms interval, want at least 3", got)
	}
}

// TestRunTaskPanicDoesNotStopScheduler checks that try's recover keeps
// the shared scheduler goroutine alive after a handler panics, so one
// bad request can't take down every other session's sweep.
func TestRunTaskPanicDoesNotStopScheduler(t *testing.T) {
	Run(func() { panic("boom") })

	var ran int64
	Run(func() { atomic.AddInt64(&ran, 1) })
	time.Sleep(time.Millisecond)

	if atomic.LoadInt64(&ran) != 1 {
		t.Error("scheduler goroutine did not survive a panicking task")
	}
}
