package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-arena/audio"
	"github.com/lixenwraith/pong-arena/config"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/game"
	"github.com/lixenwraith/pong-arena/input"
	"github.com/lixenwraith/pong-arena/render"
	"github.com/lixenwraith/pong-arena/server"
	"github.com/lixenwraith/pong-arena/service"
	"github.com/lixenwraith/pong-arena/status"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, opt, err := parseFlags(os.Args[1:], config.Load)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-arena: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: mode=%s difficulty=%s controls=%v seed=%d", cfg.Mode, cfg.Difficulty, cfg.Controls, cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetTerminalReset(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if err := run(screen, cfg, opt); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "pong-arena: %v\n", err)
		os.Exit(1)
	}
}

// buildHub registers and initialises the process services, the status API only when an address is set
func buildHub(cfg *config.Config, opt options, registry *status.Registry, pub *server.Publisher) (*service.Hub, error) {
	hub := service.NewHub()
	services := []service.Service{
		audio.NewService(audio.LoadAudioConfig()),
		status.NewReporter(registry, cfg.ReportInterval),
	}
	if cfg.ServerAddr != "" {
		services = append(services, server.NewService(server.New(pub, registry), cfg.ServerAddr))
	}
	for _, svc := range services {
		if err := hub.Register(svc); err != nil {
			return nil, err
		}
	}
	if err := hub.InitAll(map[string][]any{"audio": {opt.mute}}); err != nil {
		return nil, err
	}
	return hub, nil
}

// run owns the game loop until quit or a simulation error
func run(screen tcell.Screen, cfg *config.Config, opt options) error {
	registry := status.NewRegistry()
	pub := server.NewPublisher()

	hub, err := buildHub(cfg, opt, registry, pub)
	if err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	log.Printf("services: %v", hub.Order())

	sound := service.MustGet[*audio.AudioService](hub, "audio")

	session := game.NewSession(engine.Config{
		PvPBallSpeed: cfg.PvPBallSpeed,
		Seed:         cfg.Seed,
		Metrics:      registry,
	})
	session.Start(cfg.Mode, cfg.Difficulty, cfg.Controls)

	renderer := render.NewRenderer(screen)
	session.SetAspect(renderer.Aspect())

	tracker := input.NewTracker(nil)
	tracker.Unproject = func(col int) float64 { return renderer.Unproject(session.Bounds, col) }

	clock := engine.NewPausableClock(engine.SystemTime{})
	d := newDriver(session, clock, tracker)
	d.addSink(func(snap *engine.Snapshot) { sound.PlayAll(snap.Cues) })
	d.addSink(renderer.Render)
	d.addSink(pub.Publish)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(constant.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch tracker.Handle(ev, clock.RealTime()) {
			case input.CommandQuit:
				log.Printf("quit at tick %d, paused %v total", session.Tick(), clock.PausedTotal().Round(time.Second))
				return nil
			case input.CommandPause:
				d.togglePause()
			case input.CommandRestart:
				session.RestartRally()
			case input.CommandNewMatch:
				d.newMatch()
			case input.CommandCycleBallType:
				next := (session.Balls.Slots[0].Type + 1) % core.BallTypeCount
				session.SetBallType(next)
				log.Printf("ball type: %s", next)
			case input.CommandToggleMute:
				log.Printf("muted: %v", sound.ToggleMute())
			case input.CommandResize:
				screen.Sync()
				session.SetAspect(renderer.Aspect())
			}

		case <-ticker.C:
			if _, err := d.frame(); err != nil {
				return fmt.Errorf("tick %d: %w", session.Tick(), err)
			}
		}
	}
}
