package component

// Timer is a countdown in seconds that clamps at zero
// Shared by combo, power-up duration, slow-time, paddle modifier and ball effect timers
type Timer struct {
	Remaining float64
}

// Set starts or refreshes the countdown
func (t *Timer) Set(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	t.Remaining = seconds
}

// Clear stops the countdown without reporting expiry
func (t *Timer) Clear() {
	t.Remaining = 0
}

// Active reports whether time remains
func (t *Timer) Active() bool {
	return t.Remaining > 0
}

// Tick decays by dt and returns true only on the active to expired transition
func (t *Timer) Tick(dt float64) bool {
	if t.Remaining <= 0 {
		return false
	}
	t.Remaining -= dt
	if t.Remaining <= 0 {
		t.Remaining = 0
		return true
	}
	return false
}
