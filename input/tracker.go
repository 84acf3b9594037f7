package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
)

// HoldWindow keeps a key held after its last press or auto-repeat
// Terminals report no key release, so holding is inferred from repeats
const HoldWindow = 150 * time.Millisecond

// Tracker accumulates terminal events into per-tick intents
// Not safe for concurrent use; the driver feeds events and reads intents from one goroutine
type Tracker struct {
	keys *KeyTable

	held [core.SideCount][dirCount]time.Time

	// Mouse target in world x, applied to every mouse-controlled side
	hasTarget bool
	targetX   float64

	// Unproject maps a screen column to world x
	Unproject func(col int) float64
}

func NewTracker(keys *KeyTable) *Tracker {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Tracker{keys: keys}
}

// Handle records ev at time now and returns the driver command it carries
func (t *Tracker) Handle(ev tcell.Event, now time.Time) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev, now)
	case *tcell.EventMouse:
		if t.Unproject != nil {
			col, _ := ev.Position()
			t.targetX = t.Unproject(col)
			t.hasTarget = true
		}
	case *tcell.EventResize:
		return CommandResize
	}
	return CommandNone
}

func (t *Tracker) handleKey(ev *tcell.EventKey, now time.Time) Command {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if b, ok := t.keys.MoveRunes[r]; ok {
			t.press(b, now)
			return CommandNone
		}
		return t.keys.CommandRunes[r]
	}
	if b, ok := t.keys.MoveKeys[ev.Key()]; ok {
		t.press(b, now)
		return CommandNone
	}
	return t.keys.CommandKeys[ev.Key()]
}

// press holds b and releases the opposite direction of the same side
func (t *Tracker) press(b Binding, now time.Time) {
	t.held[b.Side][b.Dir] = now.Add(HoldWindow)
	t.held[b.Side][1-b.Dir] = time.Time{}
}

// Intents returns the movement state at now
func (t *Tracker) Intents(now time.Time) engine.Intents {
	var in engine.Intents
	for side := range in {
		in[side].Left = now.Before(t.held[side][DirLeft])
		in[side].Right = now.Before(t.held[side][DirRight])
		in[side].HasTarget = t.hasTarget
		in[side].TargetX = t.targetX
	}
	return in
}

// Release drops all held keys, used on pause and restart
func (t *Tracker) Release() {
	t.held = [core.SideCount][dirCount]time.Time{}
}
