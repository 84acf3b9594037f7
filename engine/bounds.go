package engine

import "github.com/lixenwraith/pong-arena/constant"

// Bounds is the visible playfield in world units
type Bounds struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// DefaultBounds is the 3:2 reference field
func DefaultBounds() Bounds {
	return Bounds{
		Left:   constant.FieldLeft,
		Right:  constant.FieldRight,
		Bottom: constant.FieldBottom,
		Top:    constant.FieldTop,
	}
}

// BoundsForAspect keeps the reference field visible and extends the free axis
// Wider viewports grow horizontally, taller ones vertically
func BoundsForAspect(aspect float64) Bounds {
	if aspect <= 0 {
		return DefaultBounds()
	}
	if aspect > constant.FieldReferenceAspect {
		half := constant.FieldReferenceHeight * aspect / 2
		return Bounds{Left: -half, Right: half, Bottom: constant.FieldBottom, Top: constant.FieldTop}
	}
	half := constant.FieldReferenceWidth / aspect / 2
	return Bounds{Left: constant.FieldLeft, Right: constant.FieldRight, Bottom: -half, Top: half}
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// BottomPlane is the collision plane of the bottom paddle face
func (b Bounds) BottomPlane() float64 { return b.Bottom + 2*constant.PaddleHeight }

// TopPlane is the collision plane of the top paddle face
func (b Bounds) TopPlane() float64 { return b.Top - 2*constant.PaddleHeight }

// BottomPaddleY and TopPaddleY are paddle centre lines, also the AI arrival planes
func (b Bounds) BottomPaddleY() float64 { return b.Bottom + constant.PaddleHeight }
func (b Bounds) TopPaddleY() float64    { return b.Top - constant.PaddleHeight }
