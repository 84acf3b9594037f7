package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/vmath"
)

func TestSpawnInitialSingleBall(t *testing.T) {
	var p BallPool
	for i := range p.Slots {
		p.Slots[i].Active = true
	}
	b := p.SpawnInitial()
	if b != &p.Slots[0] {
		t.Fatal("Expected slot 0 to be activated")
	}
	if p.ActiveCount() != 1 {
		t.Errorf("Expected 1 active, got %d", p.ActiveCount())
	}
}

func TestResetLaunchWithinCone(t *testing.T) {
	var p BallPool
	rng := vmath.NewFastRand(99)
	maxTan := math.Tan(vmath.DegToRad(constant.BallLaunchAngle))

	for i := 0; i < 500; i++ {
		b := &p.Slots[0]
		b.Type = core.BallFire
		b.Trail.Push(1, 1, 15)
		p.Reset(b, rng, 18)

		if math.Abs(b.Speed()-18) > 1e-9 {
			t.Fatalf("Expected speed 18, got %f", b.Speed())
		}
		if math.Abs(b.VX) > math.Abs(b.VY)*maxTan+1e-9 {
			t.Fatalf("Launch outside cone: vx=%f vy=%f", b.VX, b.VY)
		}
		if b.X < -constant.BallSpawnOffset || b.X >= constant.BallSpawnOffset || b.Y != 0 {
			t.Fatalf("Spawn position out of range: (%f, %f)", b.X, b.Y)
		}
		if b.Type != core.BallNormal || len(b.Trail.Live()) != 0 {
			t.Fatal("Expected type and trail reset")
		}
	}
}

func TestSplitMirrorsAndCaps(t *testing.T) {
	var p BallPool
	src := p.SpawnInitial()
	src.X, src.Y, src.VX, src.VY = 12, 34, 5, -7
	src.Radius = constant.BallRadius
	src.Type = core.BallIce

	clone := p.Split(src)
	if clone == nil {
		t.Fatal("Expected split to add a ball")
	}
	if clone != &p.Slots[1] {
		t.Error("Expected first free slot to be used")
	}
	if clone.VX != -5 || clone.VY != 7 || clone.X != 12 || clone.Y != 34 || clone.Type != core.BallIce {
		t.Errorf("Unexpected clone %+v", *clone)
	}

	if p.Split(src) == nil {
		t.Fatal("Expected third ball")
	}
	if p.Split(src) != nil {
		t.Error("Expected full pool split to be a no-op")
	}
	if p.ActiveCount() != constant.MaxBalls {
		t.Errorf("Expected %d active, got %d", constant.MaxBalls, p.ActiveCount())
	}
}

func TestAdvancePushesTrail(t *testing.T) {
	var p BallPool
	b := p.SpawnInitial()
	b.Radius = constant.BallRadius
	b.VX, b.VY = 2, 3
	p.Advance(b, 1)
	p.Advance(b, 1)
	live := b.Trail.Live()
	if len(live) != 2 {
		t.Fatalf("Expected 2 trail points, got %d", len(live))
	}
	if live[1].X != 4 || live[1].Y != 6 {
		t.Errorf("Expected newest point (4, 6), got (%f, %f)", live[1].X, live[1].Y)
	}
}
