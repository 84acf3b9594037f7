package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	c := NewPausableClock(mock)
	start := c.Now()

	mock.Advance(2 * time.Second)
	if got := c.Now().Sub(start); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed, got %v", got)
	}

	if !c.Pause() || c.Pause() {
		t.Error("Expected only the first Pause to take effect")
	}
	mock.Advance(5 * time.Second)
	if got := c.Now().Sub(start); got != 2*time.Second {
		t.Errorf("Expected game time frozen at 2s, got %v", got)
	}
	if got := c.PausedTotal(); got != 5*time.Second {
		t.Errorf("Expected 5s in progress pause, got %v", got)
	}
	if got := c.RealTime().Sub(time.Unix(1000, 0)); got != 7*time.Second {
		t.Errorf("Expected real time to keep running, got %v", got)
	}

	if !c.Resume() || c.Resume() {
		t.Error("Expected only the first Resume to take effect")
	}
	mock.Advance(time.Second)
	if got := c.Now().Sub(start); got != 3*time.Second {
		t.Errorf("Expected 3s game time, got %v", got)
	}
}

func TestPausableClockDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewPausableClock(mock)

	mock.Advance(16 * time.Millisecond)
	if got := c.Delta(100 * time.Millisecond); got != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", got)
	}
	if got := c.Delta(100 * time.Millisecond); got != 0 {
		t.Errorf("Expected 0 without advance, got %v", got)
	}

	mock.Advance(time.Second)
	if got := c.Delta(100 * time.Millisecond); got != 100*time.Millisecond {
		t.Errorf("Expected cap 100ms, got %v", got)
	}
	mock.Advance(10 * time.Millisecond)
	if got := c.Delta(100 * time.Millisecond); got != 10*time.Millisecond {
		t.Errorf("Expected capped excess dropped, got %v", got)
	}

	c.Pause()
	mock.Advance(time.Minute)
	if got := c.Delta(0); got != 0 {
		t.Errorf("Expected no game time while paused, got %v", got)
	}
	c.Resume()
	mock.Advance(16 * time.Millisecond)
	if got := c.Delta(0); got != 16*time.Millisecond {
		t.Errorf("Expected 16ms after resume, got %v", got)
	}
}

func TestSystemTimeMonotonic(t *testing.T) {
	var p TimeProvider = SystemTime{}
	a := p.Now()
	if p.Now().Before(a) {
		t.Error("Expected non-decreasing readings")
	}
}
