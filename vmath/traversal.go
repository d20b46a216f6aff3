package vmath

import "math"

// Traverse visits every grid cell crossed by the segment (x1, y1)-(x2, y2), coordinates are Q32.32
// Supercover DDA: diagonal moves through a corner visit one cell, stepping stops at the target cell
// Returning false from callback ends the walk
func Traverse(x1, y1, x2, y2 int64, callback func(x, y int) bool) {
	ix, iy := ToInt(x1), ToInt(y1)
	targetX, targetY := ToInt(x2), ToInt(y2)

	if !callback(ix, iy) || (ix == targetX && iy == targetY) {
		return
	}

	stepX, tMaxX, tDeltaX := axisStep(x1, x2)
	stepY, tMaxY, tDeltaY := axisStep(y1, y2)

	for ix != targetX || iy != targetY {
		switch {
		case (tMaxX < tMaxY && ix != targetX) || iy == targetY:
			ix += stepX
			tMaxX += tDeltaX
		case tMaxX > tMaxY || ix == targetX:
			iy += stepY
			tMaxY += tDeltaY
		default:
			ix += stepX
			tMaxX += tDeltaX
			iy += stepY
			tMaxY += tDeltaY
		}
		if !callback(ix, iy) {
			return
		}
	}
}

// axisStep returns direction, distance to the first boundary and boundary spacing along one axis
func axisStep(from, to int64) (step int, tMax, tDelta int64) {
	d := to - from
	step = 1
	if d < 0 {
		step = -1
		d = -d
	}
	if d == 0 {
		return step, math.MaxInt64, 0
	}
	tDelta = Div(Scale, d)
	if step > 0 {
		return step, Mul(Scale-(from&Mask), tDelta), tDelta
	}
	return step, Mul(from&Mask, tDelta), tDelta
}

// TraverseVec walks the cells crossed by a segment given in cell space floats
func TraverseVec(a, b Vec2, callback func(x, y int) bool) {
	Traverse(FromFloat(a.X), FromFloat(a.Y), FromFloat(b.X), FromFloat(b.Y), callback)
}
