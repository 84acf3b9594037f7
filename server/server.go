package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lixenwraith/pong-arena/event"
	"github.com/lixenwraith/pong-arena/status"
)

// Server serves session state over HTTP
type Server struct {
	app      *fiber.App
	pub      *Publisher
	registry *status.Registry
	started  time.Time
}

// New builds the app and its routes; registry may be nil
func New(pub *Publisher, registry *status.Registry) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			AppName:               "pong-arena",
		}),
		pub:      pub,
		registry: registry,
		started:  time.Now(),
	}
	s.routes()
	return s
}

// App exposes the fiber app for tests and custom middleware
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) routes() {
	s.app.Get("/healthz", s.health)

	api := s.app.Group("/api")
	api.Get("/snapshot", s.snapshot)
	api.Get("/score", s.score)
	api.Get("/achievements", s.achievements)
	api.Get("/metrics", s.metrics)
}

// Listen blocks serving addr until Shutdown
func (s *Server) Listen(addr string) error {
	log.Printf("[server] listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(2 * time.Second)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) snapshot(c *fiber.Ctx) error {
	snap := s.pub.Latest()
	if snap == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "no session yet"})
	}
	return c.JSON(snap)
}

func (s *Server) score(c *fiber.Ctx) error {
	snap := s.pub.Latest()
	if snap == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "no session yet"})
	}
	return c.JSON(fiber.Map{
		"session_id": snap.SessionID,
		"tick":       snap.Tick,
		"scores":     snap.Stats.Scores,
		"combo":      snap.Stats.ComboMultiplier,
		"running":    snap.Running,
	})
}

func (s *Server) achievements(c *fiber.Ctx) error {
	snap := s.pub.Latest()
	if snap == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "no session yet"})
	}

	// ?unlocked=true filters to unlocked entries
	if c.QueryBool("unlocked") {
		list := snap.Achievements[:0:0]
		for _, a := range snap.Achievements {
			if a.Unlocked {
				list = append(list, a)
			}
		}
		return c.JSON(list)
	}
	return c.JSON(fiber.Map{
		"achievements": snap.Achievements,
		"unlocked":     snap.AchievementsUnlocked,
		"history":      s.pub.Unlocked(),
	})
}

func (s *Server) metrics(c *fiber.Ctx) error {
	if s.registry == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(s.registry.Values())
}

func unlockName(ev event.GameEvent) (string, bool) {
	if ev.Type != event.EventAchievementUnlocked {
		return "", false
	}
	p, ok := ev.Payload.(*event.AchievementPayload)
	if !ok {
		return "", false
	}
	return p.Name, true
}
