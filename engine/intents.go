package engine

// PaddleIntent is the input-derived movement request for one side
// Key holds move the target; HasTarget carries an absolute mouse target
type PaddleIntent struct {
	Left      bool
	Right     bool
	HasTarget bool
	TargetX   float64
}

// Intents holds per-side intents indexed by core.Side
// AI-controlled sides ignore their intent
type Intents [2]PaddleIntent
