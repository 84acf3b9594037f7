package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

// Hub owns registered services and drives them through their lifecycle
// Start order follows Dependencies; services with no ordering constraint keep registration order
type Hub struct {
	mu      sync.RWMutex
	byName  map[string]Service
	names   []string // Registration order
	order   []string // Resolved by InitAll
	running []string // Started services, stopped in reverse
	ready   bool
}

func NewHub() *Hub {
	return &Hub{byName: make(map[string]Service)}
}

// Register adds svc, names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.byName[name]; dup {
		return fmt.Errorf("service %q registered twice", name)
	}
	h.byName[name] = svc
	h.names = append(h.names, name)
	h.order, h.ready = nil, false
	return nil
}

func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.byName[name]
	return svc, ok
}

// MustGet returns the named service as T, panics when missing or of another type
func MustGet[T Service](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service %q not registered", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %q is %T", name, svc))
	}
	return typed
}

// InitAll resolves start order and initialises every service with its args
// A failing Init stops the services initialised before it
func (h *Hub) InitAll(args map[string][]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ready = false
	if h.order == nil {
		order, err := resolve(h.names, h.byName)
		if err != nil {
			return err
		}
		h.order = order
	}

	for i, name := range h.order {
		if err := h.byName[name].Init(args[name]...); err != nil {
			h.stopReverse(h.order[:i])
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	h.ready = true
	return nil
}

// StartAll starts services in order, a failing Start stops the ones already running
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.ready {
		return errors.New("service hub: StartAll before successful InitAll")
	}
	h.running = h.running[:0]
	for _, name := range h.order {
		if err := h.byName[name].Start(); err != nil {
			h.stopReverse(h.running)
			h.running = nil
			return fmt.Errorf("start %s: %w", name, err)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops running services in reverse start order, logging failures
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopReverse(h.running)
	h.running = nil
}

func (h *Hub) stopReverse(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.byName[names[i]].Stop(); err != nil {
			log.Printf("[service] stop %s: %v", names[i], err)
		}
	}
}

// Order returns the resolved start order, nil before InitAll
func (h *Hub) Order() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.order)
}

// resolve orders names so each service follows its dependencies
// Each pass emits every service whose dependencies are placed, in registration order
func resolve(names []string, byName map[string]Service) ([]string, error) {
	for _, name := range names {
		for _, dep := range byName[name].Dependencies() {
			if _, ok := byName[dep]; !ok {
				return nil, fmt.Errorf("service %s needs unregistered %s", name, dep)
			}
		}
	}

	placed := make(map[string]bool, len(names))
	order := make([]string, 0, len(names))
	for len(order) < len(names) {
		progress := false
		for _, name := range names {
			if placed[name] {
				continue
			}
			if !slices.ContainsFunc(byName[name].Dependencies(), func(dep string) bool { return !placed[dep] }) {
				placed[name] = true
				order = append(order, name)
				progress = true
			}
		}
		if !progress {
			return nil, errors.New("service dependency cycle")
		}
	}
	return order, nil
}
