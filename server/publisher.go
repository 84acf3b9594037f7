// Package server exposes a read-only HTTP view of the running session
package server

import (
	"sync"

	"github.com/lixenwraith/pong-arena/engine"
)

// Publisher holds the latest snapshot handed over by the game loop
// Snapshots are immutable once returned by Update, so readers share the pointer
type Publisher struct {
	mu   sync.RWMutex
	snap *engine.Snapshot

	// Achievement unlocks across the process, newest last
	unlocked []string
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish stores snap as the latest state and records any unlocks it carries
func (p *Publisher) Publish(snap *engine.Snapshot) {
	if snap == nil {
		return
	}
	p.mu.Lock()
	p.snap = snap
	for _, ev := range snap.Events {
		if name, ok := unlockName(ev); ok {
			p.unlocked = append(p.unlocked, name)
		}
	}
	p.mu.Unlock()
}

// Latest returns the last published snapshot, nil before the first tick
func (p *Publisher) Latest() *engine.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// Unlocked returns a copy of recorded unlock names
func (p *Publisher) Unlocked() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, len(p.unlocked))
	copy(out, p.unlocked)
	return out
}
