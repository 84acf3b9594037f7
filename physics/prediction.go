package physics

import "github.com/lixenwraith/pong-arena/parameter"

// TimeToPlane returns ticks until y reaches plane at vertical velocity vy
// False when moving away from or parallel to the plane, or already past it
func TimeToPlane(y, vy, plane float64) (float64, bool) {
	if vy == 0 {
		return 0, false
	}
	t := (plane - y) / vy
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// PredictWallBounces projects x over ticks reflecting off left and right
// Bounds are ball-centre limits (walls inset by radius); each reflection keeps restitution of vx
func PredictWallBounces(x, vx, ticks, left, right, restitution float64) float64 {
	remaining := ticks
	for i := 0; remaining > 0 && i < parameter.AIMaxReflections; i++ {
		var tWall float64
		if vx > 0 {
			tWall = (right - x) / vx
		} else if vx < 0 {
			tWall = (left - x) / vx
		} else {
			return x
		}

		if tWall > 0 && tWall <= remaining {
			x += vx * tWall
			vx = -vx * restitution
			remaining -= tWall
			continue
		}
		return x + vx*remaining
	}
	return x
}
