// Package looper provides a single-threaded queue of deferred tasks.
//
// A Looper never runs anything on its own. The owner calls RunDue from its
// frame loop and every task executes on that goroutine, so tasks can touch UI
// state without locking.
package looper

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

// Task is a handle to a scheduled callback.
type Task struct {
	fn   func()
	due  time.Time
	seq  uint64
	done bool
}

// Pending reports whether the task is still waiting to run.
func (t *Task) Pending() bool {
	return t != nil && !t.done
}

// Looper holds tasks ordered by due time, then by posting order.
type Looper struct {
	clock clockwork.Clock
	queue []*Task
	seq   uint64
}

// New creates a Looper reading time from clock. A nil clock uses wall time.
func New(clock clockwork.Clock) *Looper {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Looper{clock: clock}
}

// Now returns the looper's current time.
func (l *Looper) Now() time.Time {
	return l.clock.Now()
}

// Post schedules fn to run on the next RunDue.
func (l *Looper) Post(fn func()) *Task {
	return l.PostDelayed(fn, 0)
}

// PostDelayed schedules fn to run once delay has elapsed.
func (l *Looper) PostDelayed(fn func(), delay time.Duration) *Task {
	if delay < 0 {
		delay = 0
	}
	l.seq++
	t := &Task{fn: fn, due: l.clock.Now().Add(delay), seq: l.seq}

	i := len(l.queue)
	for i > 0 && l.queue[i-1].due.After(t.due) {
		i--
	}
	l.queue = append(l.queue, nil)
	copy(l.queue[i+1:], l.queue[i:])
	l.queue[i] = t
	return t
}

// Remove cancels t. Removing a nil, finished or already removed task is a no-op.
func (l *Looper) Remove(t *Task) {
	if t == nil || t.done {
		return
	}
	t.done = true
	l.queue = lo.Without(l.queue, t)
}

// RunDue runs every task whose due time has been reached and returns how many
// ran. Tasks posted by those callbacks wait for the next call.
func (l *Looper) RunDue() int {
	now := l.clock.Now()
	limit := l.seq
	ran := 0
	for {
		idx := -1
		for i, t := range l.queue {
			if t.due.After(now) {
				break
			}
			if t.seq <= limit {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ran
		}
		t := l.queue[idx]
		l.queue = append(l.queue[:idx], l.queue[idx+1:]...)
		t.done = true
		t.fn()
		ran++
	}
}

// Pending returns the number of queued tasks.
func (l *Looper) Pending() int {
	return len(l.queue)
}

// NextDue returns when the earliest task is due.
func (l *Looper) NextDue() (time.Time, bool) {
	if len(l.queue) == 0 {
		return time.Time{}, false
	}
	return l.queue[0].due, true
}

// Clear drops every queued task.
func (l *Looper) Clear() {
	for _, t := range l.queue {
		t.done = true
	}
	l.queue = nil
}
