// Command pong-bench runs headless AI-vs-AI sessions and reports simulation throughput
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
	"github.com/lixenwraith/pong-arena/game"
	"github.com/lixenwraith/pong-arena/render"
)

var (
	ticks      = flag.Int("ticks", 100000, "Simulation ticks to run")
	difficulty = flag.String("difficulty", "medium", "AI difficulty: medium, hard")
	seed       = flag.Uint64("seed", 1, "Random seed")
	withRender = flag.Bool("render", false, "Render every tick to an off-screen terminal")
	asJSON     = flag.Bool("json", false, "Print results as JSON")
)

// result summarises one benchmark run
type result struct {
	Ticks        int            `json:"ticks"`
	Elapsed      time.Duration  `json:"elapsed_ns"`
	TicksPerSec  float64        `json:"ticks_per_sec"`
	SimSeconds   float64        `json:"sim_seconds"`
	Events       map[string]int `json:"events"`
	Stats        engine.Stats   `json:"stats"`
	Achievements int            `json:"achievements"`
	TotalAlloc   uint64         `json:"total_alloc"`
	Mallocs      uint64         `json:"mallocs"`
}

func main() {
	flag.Parse()

	diff, ok := core.ParseDifficulty(*difficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q\n", *difficulty)
		os.Exit(2)
	}

	var renderer *render.Renderer
	if *withRender {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
			os.Exit(1)
		}
		screen.SetSize(120, 40)
		defer screen.Fini()
		renderer = render.NewRenderer(screen)
	}

	res, err := bench(*ticks, diff, *seed, renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(res)
		return
	}

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Ticks:        %d (%.0fs simulated)\n", res.Ticks, res.SimSeconds)
	fmt.Printf("  Total Time:   %v\n", res.Elapsed)
	fmt.Printf("  Ticks/sec:    %.0f\n", res.TicksPerSec)
	fmt.Printf("  Scores:       bottom %d  top %d\n", res.Stats.Scores[core.SideBottom], res.Stats.Scores[core.SideTop])
	fmt.Printf("  Hits:         %d (max speed %.2f)\n", res.Stats.TotalHits, res.Stats.MaxBallSpeed)
	fmt.Printf("  Power-ups:    %d collected\n", res.Stats.PowerUpsCollected)
	fmt.Printf("  Achievements: %d\n", res.Achievements)
	for t := event.EventType(0); t < event.EventTypeCount; t++ {
		if n := res.Events[t.String()]; n > 0 {
			fmt.Printf("  %-22s %d\n", t.String()+":", n)
		}
	}
	fmt.Printf("  Total Alloc:  %d bytes\n", res.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", res.Mallocs)
}

// bench runs n fixed ticks of an AI-vs-AI session
func bench(n int, diff core.Difficulty, seed uint64, renderer *render.Renderer) (*result, error) {
	s := game.NewSession(engine.Config{Seed: seed})
	s.Start(core.ModeVsAI, diff, [core.SideCount]core.ControlScheme{core.ControlAI, core.ControlAI})
	if renderer != nil {
		s.SetAspect(renderer.Aspect())
	}

	res := &result{Ticks: n, Events: make(map[string]int)}

	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	for i := 0; i < n; i++ {
		snap, err := s.Update(constant.TickInterval, engine.Intents{})
		if err != nil {
			return nil, err
		}
		for _, ev := range snap.Events {
			res.Events[ev.Type.String()]++
		}
		if renderer != nil {
			renderer.Render(snap)
		}
	}

	res.Elapsed = time.Since(start)
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	res.TicksPerSec = float64(n) / res.Elapsed.Seconds()
	res.SimSeconds = float64(n) * constant.TickSeconds
	res.Stats = s.Stats
	res.Achievements = s.Achievements.UnlockedCount()
	res.TotalAlloc = after.TotalAlloc - before.TotalAlloc
	res.Mallocs = after.Mallocs - before.Mallocs
	return res, nil
}
