package system

import (
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
)

// ComboSystem decays the combo timer and drops the multiplier on expiry
type ComboSystem struct{}

func NewComboSystem() *ComboSystem { return &ComboSystem{} }

func (s *ComboSystem) Name() string  { return "combo" }
func (s *ComboSystem) Priority() int { return constant.PriorityCombo }

func (s *ComboSystem) Update(w *engine.World, t engine.Tick) {
	if w.ComboTimer.Tick(t.Real) {
		w.Stats.ResetCombo()
		w.Emit(event.GameEvent{Type: event.EventComboExpired})
	}
}
