package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// PausableClock measures game time as real time minus paused spans
// Safe for concurrent use
type PausableClock struct {
	mu  sync.Mutex
	src TimeProvider

	start       time.Time
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration

	// Game elapsed at the previous Delta call
	consumed time.Duration
}

func NewPausableClock(src TimeProvider) *PausableClock {
	if src == nil {
		src = SystemTime{}
	}
	return &PausableClock{src: src, start: src.Now()}
}

// elapsedLocked is game time since start, frozen while paused
func (c *PausableClock) elapsedLocked() time.Duration {
	now := c.src.Now()
	if c.paused {
		now = c.pausedAt
	}
	return now.Sub(c.start) - c.pausedTotal
}

// Now returns the current game time
func (c *PausableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start.Add(c.elapsedLocked())
}

// RealTime returns the provider reading, unaffected by pause
func (c *PausableClock) RealTime() time.Time { return c.src.Now() }

// Pause freezes game time, returns false when already paused
func (c *PausableClock) Pause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return false
	}
	c.paused = true
	c.pausedAt = c.src.Now()
	return true
}

// Resume continues game time, returns false when not paused
func (c *PausableClock) Resume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return false
	}
	c.pausedTotal += c.src.Now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
	return true
}

func (c *PausableClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// PausedTotal returns cumulative pause time including a pause in progress
func (c *PausableClock) PausedTotal() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.pausedTotal
	if c.paused {
		total += c.src.Now().Sub(c.pausedAt)
	}
	return total
}

// Delta returns game time since the previous call, capped at limit
// Time beyond the cap is dropped, not carried into the next frame
func (c *PausableClock) Delta(limit time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	elapsed := c.elapsedLocked()
	dt := elapsed - c.consumed
	c.consumed = elapsed
	if limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}
