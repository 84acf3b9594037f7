package component

import "github.com/lixenwraith/pong-arena/core"

// PowerUp is one floating collectible slot
// Size and Rotation are presentation-only animation state
type PowerUp struct {
	X, Y     float64
	Type     core.PowerUpType
	Active   bool
	Size     float64
	Rotation float64
}
