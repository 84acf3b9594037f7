package component

import "github.com/lixenwraith/pong-arena/constant"

// TrailPoint is one fading sample of a ball's recent path
// Entries with non-positive Life are inert
type TrailPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Life float64 `json:"life"`
	Size float64 `json:"size"`
}

// Trail is a fixed ring of recent positions
type Trail struct {
	Points [constant.MaxTrail]TrailPoint
	Index  int
}

// Push advances the write index, stores the sample and decays every live entry
func (t *Trail) Push(x, y, size float64) {
	t.Index = (t.Index + 1) % constant.MaxTrail
	t.Points[t.Index] = TrailPoint{X: x, Y: y, Life: 1, Size: size}

	for i := range t.Points {
		if t.Points[i].Life > 0 {
			t.Points[i].Life -= constant.TrailLifeDecay
			t.Points[i].Size *= constant.TrailSizeDecay
		}
	}
}

// Reset marks every entry inert
func (t *Trail) Reset() {
	for i := range t.Points {
		t.Points[i].Life = 0
	}
	t.Index = 0
}

// Live returns live entries ordered oldest to newest
func (t *Trail) Live() []TrailPoint {
	out := make([]TrailPoint, 0, constant.MaxTrail)
	for i := 1; i <= constant.MaxTrail; i++ {
		p := t.Points[(t.Index+i)%constant.MaxTrail]
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return out
}
