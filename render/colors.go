// Package render draws session snapshots to a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/core"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(80, 80, 100)   // Dim slate
	RgbCenterLine = tcell.NewRGBColor(50, 50, 65)    // Darker slate
	RgbStatusText = tcell.NewRGBColor(230, 230, 230) // Near white
	RgbTrail      = tcell.NewRGBColor(120, 120, 140) // Gray trail
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbCombo      = tcell.NewRGBColor(255, 220, 0)   // Gold
	RgbToast      = tcell.NewRGBColor(144, 238, 144) // Light green

	RgbPaddleBottom = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbPaddleTop    = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbPaddleBig    = tcell.NewRGBColor(255, 255, 255) // White while enlarged
)

// Ball colors indexed by type
var ballColors = [core.BallTypeCount]tcell.Color{
	core.BallNormal:   tcell.NewRGBColor(255, 255, 255),
	core.BallFire:     tcell.NewRGBColor(255, 80, 0),
	core.BallIce:      tcell.NewRGBColor(128, 204, 255),
	core.BallMagnetic: tcell.NewRGBColor(200, 100, 255),
	core.BallSplit:    tcell.NewRGBColor(0, 220, 120),
}

// Power-up glyph and color indexed by type
var powerUpGlyphs = [core.PowerUpTypeCount]struct {
	r     rune
	color tcell.Color
}{
	core.PowerUpNone:          {'?', tcell.ColorGray},
	core.PowerUpBigPaddle:     {'B', tcell.NewRGBColor(0, 200, 0)},
	core.PowerUpSlowBall:      {'S', tcell.NewRGBColor(0, 200, 200)},
	core.PowerUpExtraPoints:   {'$', tcell.NewRGBColor(255, 255, 0)},
	core.PowerUpSlowTime:      {'T', tcell.NewRGBColor(140, 190, 255)},
	core.PowerUpFastPaddle:    {'F', tcell.NewRGBColor(255, 165, 0)},
	core.PowerUpInvisibleBall: {'I', tcell.NewRGBColor(160, 160, 160)},
	core.PowerUpSplitBall:     {'X', tcell.NewRGBColor(255, 105, 180)},
}

func ballColor(t core.BallType) tcell.Color {
	if t >= core.BallTypeCount {
		return ballColors[core.BallNormal]
	}
	return ballColors[t]
}

func particleColor(c component.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
