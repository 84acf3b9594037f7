package main

import (
	"time"

	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/game"
	"github.com/lixenwraith/pong-arena/input"
)

// maxFrameDelta caps a single update after a stall (suspend, slow terminal)
const maxFrameDelta = 100 * time.Millisecond

// driver advances a session on pausable game time and fans snapshots out to sinks
type driver struct {
	session *game.Session
	clock   *engine.PausableClock
	tracker *input.Tracker
	sinks   []func(*engine.Snapshot)
}

func newDriver(session *game.Session, clock *engine.PausableClock, tracker *input.Tracker) *driver {
	return &driver{session: session, clock: clock, tracker: tracker}
}

func (d *driver) addSink(fn func(*engine.Snapshot)) {
	d.sinks = append(d.sinks, fn)
}

// togglePause freezes or resumes game time together with the session
func (d *driver) togglePause() {
	if d.clock.Paused() {
		d.clock.Resume()
		d.session.SetRunning(true)
	} else {
		d.clock.Pause()
		d.session.SetRunning(false)
	}
	d.tracker.Release()
}

// newMatch restarts the match with the current settings, unpausing if needed
func (d *driver) newMatch() {
	d.session.Start(d.session.Mode, d.session.Difficulty, d.session.Controls)
	d.clock.Resume()
	d.tracker.Release()
}

// frame runs one update with the game time elapsed since the previous frame
// With no elapsed game time the current state is still published
func (d *driver) frame() (*engine.Snapshot, error) {
	var snap *engine.Snapshot
	if dt := d.clock.Delta(maxFrameDelta); dt > 0 {
		var err error
		snap, err = d.session.Update(dt, d.tracker.Intents(d.clock.RealTime()))
		if err != nil {
			return nil, err
		}
	} else {
		snap = d.session.Snapshot()
	}
	for _, sink := range d.sinks {
		sink(snap)
	}
	return snap, nil
}
