// Package timer implements the countdown state machine for timed writing
// sessions. It holds no clock of its own: the TUI schedules one tick per
// second and feeds them in, which keeps pause, resume, and cancellation
// deterministic and testable.
package timer

import "time"

// Countdown tracks the remaining time of a writing session.
type Countdown struct {
	remaining time.Duration
	paused    bool
	cancelled bool
}

// New creates a countdown with the given duration.
func New(d time.Duration) *Countdown {
	if d < 0 {
		d = 0
	}
	return &Countdown{remaining: d}
}

// Tick advances the countdown by one second. Ticks are ignored while the
// countdown is paused, cancelled, or already finished, so a tick that was
// scheduled before cancellation can never fire an effect after it.
func (c *Countdown) Tick() {
	if c.paused || c.cancelled || c.remaining <= 0 {
		return
	}
	c.remaining -= time.Second
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Pause stops the countdown until Resume is called.
func (c *Countdown) Pause() {
	if !c.cancelled {
		c.paused = true
	}
}

// Resume restarts a paused countdown.
func (c *Countdown) Resume() {
	if !c.cancelled {
		c.paused = false
	}
}

// Cancel stops the countdown permanently.
func (c *Countdown) Cancel() {
	c.cancelled = true
}

// Remaining returns the time left on the countdown.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Done reports whether the countdown ran to completion.
func (c *Countdown) Done() bool {
	return !c.cancelled && c.remaining <= 0
}

// Paused reports whether the countdown is paused.
func (c *Countdown) Paused() bool {
	return c.paused
}

// Cancelled reports whether the countdown was cancelled.
func (c *Countdown) Cancelled() bool {
	return c.cancelled
}
