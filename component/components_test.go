package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/vmath"
)

func TestTimerExpiresOnce(t *testing.T) {
	var tm Timer
	if tm.Tick(1) {
		t.Error("Idle timer must not report expiry")
	}

	tm.Set(0.05)
	if !tm.Active() {
		t.Fatal("Expected timer to be active after Set")
	}
	if tm.Tick(0.016) || tm.Tick(0.016) || tm.Tick(0.016) {
		t.Fatal("Timer expired early")
	}
	if !tm.Tick(0.016) {
		t.Fatal("Expected expiry transition on fourth tick")
	}
	if tm.Remaining != 0 {
		t.Errorf("Expected clamp at zero, got %f", tm.Remaining)
	}
	if tm.Tick(0.016) {
		t.Error("Expiry must be reported exactly once")
	}
}

func TestTimerNegativeSet(t *testing.T) {
	var tm Timer
	tm.Set(-3)
	if tm.Active() {
		t.Error("Negative duration must leave timer inactive")
	}
}

func TestTrailRingDecay(t *testing.T) {
	var tr Trail
	tr.Push(1, 2, constant.BallRadius)

	live := tr.Live()
	if len(live) != 1 {
		t.Fatalf("Expected 1 live point, got %d", len(live))
	}
	if math.Abs(live[0].Life-(1-constant.TrailLifeDecay)) > 1e-9 {
		t.Errorf("Expected life %f, got %f", 1-constant.TrailLifeDecay, live[0].Life)
	}

	for i := 0; i < 5; i++ {
		tr.Push(float64(i), 0, constant.BallRadius)
	}
	live = tr.Live()
	// Oldest first, newest last
	for i := 1; i < len(live); i++ {
		if live[i].Life < live[i-1].Life {
			t.Fatalf("Expected life to increase toward newest entry at %d", i)
		}
	}
	if live[len(live)-1].X != 4 {
		t.Errorf("Expected newest X=4, got %f", live[len(live)-1].X)
	}
}

func TestTrailEntriesGoInert(t *testing.T) {
	var tr Trail
	for i := 0; i < 15; i++ {
		tr.Push(float64(i), 0, 15)
	}
	// Past ten decays the first sample is dead
	for _, p := range tr.Live() {
		if p.X == 0 {
			t.Error("Expected first sample to be inert after 15 pushes")
		}
	}

	tr.Reset()
	if len(tr.Live()) != 0 {
		t.Error("Expected empty trail after Reset")
	}
}

func TestPaddleWidthAndClamp(t *testing.T) {
	p := NewPaddle(core.SideBottom)
	if p.Width() != constant.PaddleWidth {
		t.Fatalf("Expected width %f, got %f", constant.PaddleWidth, p.Width())
	}
	p.Big = true
	if p.Width() != constant.PaddleWidth*constant.BigPaddleFactor {
		t.Errorf("Expected big width %f, got %f", constant.PaddleWidth*constant.BigPaddleFactor, p.Width())
	}

	p.X, p.TargetX = 1000, -1000
	p.Clamp(constant.FieldLeft, constant.FieldRight)
	if p.X+p.HalfWidth() > constant.FieldRight {
		t.Errorf("Right edge %f exceeds field", p.X+p.HalfWidth())
	}
	if p.TargetX-p.HalfWidth() < constant.FieldLeft {
		t.Errorf("Target left edge %f exceeds field", p.TargetX-p.HalfWidth())
	}
}

func TestPaddleContainsEdges(t *testing.T) {
	p := NewPaddle(core.SideTop)
	if !p.Contains(80) || !p.Contains(-80) {
		t.Error("Expected edges to be inclusive")
	}
	if p.Contains(80.01) {
		t.Error("Expected point past edge to miss")
	}
}

func TestPaddleSpeedModifierReverts(t *testing.T) {
	p := NewPaddle(core.SideBottom)
	p.SetSpeedModifier(1.5, 0.032)
	if p.TickModifiers(0.016) {
		t.Fatal("Modifier reverted early")
	}
	if !p.TickModifiers(0.016) {
		t.Fatal("Expected modifier to revert")
	}
	if p.SpeedMult != 1 {
		t.Errorf("Expected SpeedMult 1, got %f", p.SpeedMult)
	}
}

func TestParticlePoolCapacity(t *testing.T) {
	var pool ParticlePool
	rng := vmath.NewFastRand(3)
	for i := 0; i < constant.MaxParticles; i++ {
		if !pool.Emit(0, 0, ColorSpark, rng) {
			t.Fatalf("Emit failed at %d", i)
		}
	}
	if pool.Emit(0, 0, ColorSpark, rng) {
		t.Error("Expected full pool to reject emission")
	}

	// 50 ticks of 0.02 decay kills everything
	for i := 0; i < 51; i++ {
		pool.Update(1)
	}
	if n := len(pool.Live()); n != 0 {
		t.Errorf("Expected all particles dead, got %d", n)
	}
	if !pool.Emit(0, 0, ColorFire, rng) {
		t.Error("Expected dead slot to be reused")
	}
}

func TestBallInvisible(t *testing.T) {
	b := Ball{VX: 3, VY: 4}
	if b.Speed() != 5 {
		t.Errorf("Expected speed 5, got %f", b.Speed())
	}
	if b.Invisible() {
		t.Error("Expected visible ball")
	}
	b.Effect.Set(constant.InvisibleDuration)
	if !b.Invisible() {
		t.Error("Expected invisible ball while effect runs")
	}
}
