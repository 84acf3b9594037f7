package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/render"
)

func TestBenchCountsEvents(t *testing.T) {
	res, err := bench(2000, core.DifficultyHard, 3, nil)
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	if res.Ticks != 2000 || res.SimSeconds != 32 {
		t.Errorf("Expected 2000 ticks over 32s, got %d over %f", res.Ticks, res.SimSeconds)
	}
	if res.Events["session_start"] != 1 {
		t.Errorf("Expected one session start, got %d", res.Events["session_start"])
	}
	if res.Events["paddle_hit"] != res.Stats.TotalHits {
		t.Errorf("Expected paddle events %d to match total hits %d", res.Events["paddle_hit"], res.Stats.TotalHits)
	}
}

func TestBenchWithRenderer(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(120, 40)

	if _, err := bench(200, core.DifficultyMedium, 1, render.NewRenderer(screen)); err != nil {
		t.Fatalf("bench failed: %v", err)
	}
}
