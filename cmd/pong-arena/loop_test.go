package main

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/pong-arena/audio"
	"github.com/lixenwraith/pong-arena/config"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/game"
	"github.com/lixenwraith/pong-arena/input"
	"github.com/lixenwraith/pong-arena/server"
	"github.com/lixenwraith/pong-arena/service"
	"github.com/lixenwraith/pong-arena/status"
)

func newTestDriver(t *testing.T) (*driver, *engine.MockTimeProvider, *[]*engine.Snapshot) {
	t.Helper()
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	s := game.NewSession(engine.Config{Seed: 1})
	s.Start(core.ModePvP, core.DifficultyMedium, [2]core.ControlScheme{core.ControlKeys, core.ControlKeys})
	d := newDriver(s, engine.NewPausableClock(mock), input.NewTracker(nil))

	var published []*engine.Snapshot
	d.addSink(func(snap *engine.Snapshot) { published = append(published, snap) })
	return d, mock, &published
}

func TestDriverAdvancesOnGameTime(t *testing.T) {
	d, mock, published := newTestDriver(t)

	mock.Advance(16 * time.Millisecond)
	if _, err := d.frame(); err != nil {
		t.Fatalf("frame failed: %v", err)
	}
	if d.session.Tick() != 1 {
		t.Errorf("Expected tick 1, got %d", d.session.Tick())
	}
	if math.Abs(d.session.AnimTime-0.016) > 1e-9 {
		t.Errorf("Expected 0.016s of game time, got %f", d.session.AnimTime)
	}

	// No elapsed time still republishes without advancing
	if _, err := d.frame(); err != nil {
		t.Fatalf("frame failed: %v", err)
	}
	if d.session.Tick() != 1 || len(*published) != 2 {
		t.Errorf("Expected tick 1 and 2 publishes, got tick %d and %d", d.session.Tick(), len(*published))
	}

	before := d.session.AnimTime
	mock.Advance(3 * time.Second)
	if _, err := d.frame(); err != nil {
		t.Fatalf("frame failed: %v", err)
	}
	if got := d.session.AnimTime - before; math.Abs(got-maxFrameDelta.Seconds()) > 1e-9 {
		t.Errorf("Expected stall capped at %v, got %fs", maxFrameDelta, got)
	}
}

func TestDriverPauseFreezesGameTime(t *testing.T) {
	d, mock, published := newTestDriver(t)

	mock.Advance(16 * time.Millisecond)
	d.frame()

	d.togglePause()
	mock.Advance(5 * time.Second)
	snap, err := d.frame()
	if err != nil {
		t.Fatalf("frame failed: %v", err)
	}
	if snap.Running || d.session.Tick() != 1 {
		t.Errorf("Expected paused at tick 1, got running=%v tick=%d", snap.Running, d.session.Tick())
	}
	if len(*published) != 2 {
		t.Errorf("Expected paused frame to publish, got %d", len(*published))
	}

	d.togglePause()
	mock.Advance(16 * time.Millisecond)
	snap, err = d.frame()
	if err != nil {
		t.Fatalf("frame failed: %v", err)
	}
	if !snap.Running || d.session.Tick() != 2 {
		t.Errorf("Expected running at tick 2, got running=%v tick=%d", snap.Running, d.session.Tick())
	}
	if math.Abs(d.session.AnimTime-0.032) > 1e-9 {
		t.Errorf("Expected pause excluded from game time, got %fs", d.session.AnimTime)
	}
}

func TestDriverNewMatchUnpauses(t *testing.T) {
	d, mock, _ := newTestDriver(t)
	d.togglePause()
	d.newMatch()

	if d.clock.Paused() || !d.session.Running() {
		t.Error("Expected new match to resume")
	}
	mock.Advance(16 * time.Millisecond)
	d.frame()
	if d.session.Tick() != 1 {
		t.Errorf("Expected tick 1 after new match, got %d", d.session.Tick())
	}
}

func TestBuildHub(t *testing.T) {
	cfg := config.Default()
	cfg.ServerAddr = "127.0.0.1:0"

	hub, err := buildHub(cfg, options{mute: true}, status.NewRegistry(), server.NewPublisher())
	if err != nil {
		t.Fatalf("buildHub failed: %v", err)
	}
	want := []string{"audio", "status", "server"}
	if got := hub.Order(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected order %v, got %v", want, got)
	}
	if !service.MustGet[*audio.AudioService](hub, "audio").Muted() {
		t.Error("Expected -mute to start audio muted")
	}

	cfg.ServerAddr = ""
	hub, err = buildHub(cfg, options{}, status.NewRegistry(), server.NewPublisher())
	if err != nil {
		t.Fatalf("buildHub failed: %v", err)
	}
	if _, ok := hub.Get("server"); ok {
		t.Error("Expected no server without an address")
	}
}
