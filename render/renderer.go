package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
)

const (
	statusRows = 1
	// toastTicks keeps an achievement banner up for roughly three seconds
	toastTicks = 190

	// Terminal cells are about twice as tall as wide
	cellAspect = 2.0
)

// Renderer maps world coordinates onto the terminal grid
// Row 0 is the status bar, the field fills the rest
type Renderer struct {
	screen tcell.Screen

	toast     string
	toastTick uint64
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Aspect returns the field aspect ratio visible on the current screen, for World.SetAspect
func (r *Renderer) Aspect() float64 {
	w, h := r.screen.Size()
	rows := h - statusRows
	if w <= 0 || rows <= 0 {
		return 0
	}
	return float64(w) / (float64(rows) * cellAspect)
}

// Project converts world coordinates to a cell, false when off the field
func (r *Renderer) Project(b engine.Bounds, x, y float64) (int, int, bool) {
	w, h := r.screen.Size()
	rows := h - statusRows
	if w <= 0 || rows <= 0 || b.Width() <= 0 || b.Height() <= 0 {
		return 0, 0, false
	}
	cx := int(math.Round((x - b.Left) / b.Width() * float64(w-1)))
	cy := statusRows + int(math.Round((b.Top-y)/b.Height()*float64(rows-1)))
	if cx < 0 || cx >= w || cy < statusRows || cy >= h {
		return 0, 0, false
	}
	return cx, cy, true
}

// Unproject converts a screen column back to world x
func (r *Renderer) Unproject(b engine.Bounds, col int) float64 {
	w, _ := r.screen.Size()
	if w < 2 {
		return (b.Left + b.Right) / 2
	}
	return b.Left + float64(col)/float64(w-1)*b.Width()
}

// Render draws one frame and shows it
func (r *Renderer) Render(snap *engine.Snapshot) {
	r.noteEvents(snap)

	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	r.drawCenterLine(snap, bg)
	r.drawParticles(snap, bg)
	r.drawPowerUps(snap, bg)
	r.drawBalls(snap, bg)
	r.drawPaddles(snap, bg)
	r.drawStatus(snap, bg)

	r.screen.Show()
}

func (r *Renderer) noteEvents(snap *engine.Snapshot) {
	for _, ev := range snap.Events {
		if ev.Type != event.EventAchievementUnlocked {
			continue
		}
		if p, ok := ev.Payload.(*event.AchievementPayload); ok {
			r.toast = "Achievement: " + p.Name
			r.toastTick = snap.Tick
		}
	}
	// Tick restarts from zero on a new match
	if r.toast != "" && (snap.Tick < r.toastTick || snap.Tick > r.toastTick+toastTicks) {
		r.toast = ""
	}
}

func (r *Renderer) drawCenterLine(snap *engine.Snapshot, bg tcell.Style) {
	w, _ := r.screen.Size()
	_, cy, ok := r.Project(snap.Bounds, snap.Bounds.Left, (snap.Bounds.Top+snap.Bounds.Bottom)/2)
	if !ok {
		return
	}
	style := bg.Foreground(RgbCenterLine)
	for x := 0; x < w; x += 2 {
		r.screen.SetContent(x, cy, '-', nil, style)
	}
}

func (r *Renderer) drawParticles(snap *engine.Snapshot, bg tcell.Style) {
	for _, p := range snap.Particles {
		if x, y, ok := r.Project(snap.Bounds, p.X, p.Y); ok {
			glyph := '.'
			if p.Life > 0.5 {
				glyph = '*'
			}
			r.screen.SetContent(x, y, glyph, nil, bg.Foreground(particleColor(p.Color)))
		}
	}
}

func (r *Renderer) drawPowerUps(snap *engine.Snapshot, bg tcell.Style) {
	for _, pu := range snap.PowerUps {
		if pu.Type >= core.PowerUpTypeCount {
			continue
		}
		g := powerUpGlyphs[pu.Type]
		if x, y, ok := r.Project(snap.Bounds, pu.X, pu.Y); ok {
			r.screen.SetContent(x, y, g.r, nil, bg.Foreground(g.color).Bold(true))
		}
	}
}

func (r *Renderer) drawBalls(snap *engine.Snapshot, bg tcell.Style) {
	trail := bg.Foreground(RgbTrail)
	for _, b := range snap.Balls {
		if b.Invisible {
			continue
		}
		for _, tp := range b.Trail {
			if x, y, ok := r.Project(snap.Bounds, tp.X, tp.Y); ok {
				r.screen.SetContent(x, y, '.', nil, trail)
			}
		}
		if x, y, ok := r.Project(snap.Bounds, b.X, b.Y); ok {
			r.screen.SetContent(x, y, 'O', nil, bg.Foreground(ballColor(b.Type)).Bold(true))
		}
	}
}

func (r *Renderer) drawPaddles(snap *engine.Snapshot, bg tcell.Style) {
	for _, p := range snap.Paddles {
		y := snap.Bounds.BottomPaddleY()
		color := RgbPaddleBottom
		if p.Side == core.SideTop {
			y = snap.Bounds.TopPaddleY()
			color = RgbPaddleTop
		}
		if p.Big {
			color = RgbPaddleBig
		}

		x0, cy, ok0 := r.Project(snap.Bounds, p.X-p.Width/2, y)
		x1, _, ok1 := r.Project(snap.Bounds, p.X+p.Width/2, y)
		if !ok0 || !ok1 {
			continue
		}
		style := bg.Foreground(color)
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, cy, '=', nil, style)
		}
	}
}

func (r *Renderer) drawStatus(snap *engine.Snapshot, bg tcell.Style) {
	w, _ := r.screen.Size()
	style := bg.Foreground(RgbStatusText)

	line := fmt.Sprintf(" %s %s | bottom %d  top %d | speed %.1f | %d/%d",
		snap.Mode, snap.Difficulty,
		snap.Score(core.SideBottom), snap.Score(core.SideTop),
		snap.BallSpeed, snap.AchievementsUnlocked, len(snap.Achievements))
	x := drawText(r.screen, 0, 0, w, line, style)

	if snap.Stats.ComboMultiplier > 1 {
		x = drawText(r.screen, x, 0, w, fmt.Sprintf(" | COMBO x%d %.1fs", snap.Stats.ComboMultiplier, snap.ComboTime), bg.Foreground(RgbCombo))
	}
	if snap.SlowFactor < 1 {
		x = drawText(r.screen, x, 0, w, " | SLOW", style)
	}
	if !snap.Running {
		x = drawText(r.screen, x, 0, w, " | PAUSED", bg.Foreground(RgbPaused).Bold(true))
	}
	if r.toast != "" {
		drawText(r.screen, x, 0, w, " | "+r.toast, bg.Foreground(RgbToast))
	}
}

// drawText writes s from x, clipped at limit, returns the next column
func drawText(s tcell.Screen, x, y, limit int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= limit {
			break
		}
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
