package server

import (
	"log"
	"sync"

	"github.com/lixenwraith/pong-arena/core"
)

// Service runs the status API listener as a process service
type Service struct {
	srv  *Server
	addr string

	mu      sync.Mutex
	running bool
}

func NewService(srv *Server, addr string) *Service {
	return &Service{srv: srv, addr: addr}
}

func (s *Service) Name() string { return "server" }

// Dependencies orders the listener after metric reporting
func (s *Service) Dependencies() []string { return []string{"status"} }

func (s *Service) Init(args ...any) error { return nil }

// Start listens in the background
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	s.running = true
	core.Go(func() {
		if err := s.srv.Listen(s.addr); err != nil {
			log.Printf("[server] stopped: %v", err)
		}
	})
	return nil
}

func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false
	return s.srv.Shutdown()
}
