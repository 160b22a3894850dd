package systems

import "time"

// FrameTimer turns wall-clock readings into the millisecond timestamps the
// Clock consumes. Time spent paused is not counted, so a resumed simulation
// does not see one huge dt.
type FrameTimer struct {
	now    func() time.Time
	last   time.Time
	ts     float64
	paused bool
}

// NewFrameTimer creates a timer reading from now, or time.Now when nil
func NewFrameTimer(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{now: now}
}

// Timestamp returns the running timestamp in milliseconds
func (t *FrameTimer) Timestamp() float64 {
	if t.paused {
		return t.ts
	}
	now := t.now()
	if !t.last.IsZero() {
		t.ts += float64(now.Sub(t.last)) / float64(time.Millisecond)
	}
	t.last = now
	return t.ts
}

// Pause freezes the timestamp
func (t *FrameTimer) Pause() {
	t.paused = true
	t.last = time.Time{}
}

// Resume restarts counting from the next reading
func (t *FrameTimer) Resume() {
	t.paused = false
}

// Paused reports whether the timer is frozen
func (t *FrameTimer) Paused() bool {
	return t.paused
}
