// Package clock provides the time source used by the todo service. Production
// code uses Real(); tests use a Fake with explicit control over time.
package clock

import (
	"sync"
	"time"

	"todolist/internal/core/ports"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

func Real() ports.Clock { return realClock{} }

// Fake returns its current time and advances by step on every call to Now.
type Fake struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

var _ ports.Clock = (*Fake)(nil)

func NewFake(start time.Time, step time.Duration) *Fake {
	return &Fake{now: start, step: step}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now
	f.now = f.now.Add(f.step)
	return now
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
