package vmath

import (
	"math"
)

// DistPointSegment returns the distance from p to the closest point of segment ab
// Degenerate segments (a == b) collapse to point distance
func DistPointSegment(p, a, b Vec2) float64 {
	ab := V2Sub(b, a)
	lenSq := V2MagSq(ab)
	if lenSq == 0 {
		return V2Dist(p, a)
	}

	t := V2Dot(V2Sub(p, a), ab) / lenSq
	t = Clamp01(t)
	closest := V2Add(a, V2Scale(ab, t))
	return V2Dist(p, closest)
}

// NearestSegmentDistance returns the minimum distance from p to any consecutive-point
// segment of the polyline; ok is false when the polyline has fewer than 2 points
func NearestSegmentDistance(p Vec2, polyline []Vec2) (dist float64, ok bool) {
	if len(polyline) < 2 {
		return math.Inf(1), false
	}

	dist = math.MaxFloat64
	for i := 0; i < len(polyline)-1; i++ {
		if d := DistPointSegment(p, polyline[i], polyline[i+1]); d < dist {
			dist = d
		}
	}
	return dist, true
}

// MeanNearestDistance averages NearestSegmentDistance over all points
// ok is false for an empty point set or a degenerate polyline
func MeanNearestDistance(points, polyline []Vec2) (mean float64, ok bool) {
	if len(points) == 0 || len(polyline) < 2 {
		return 0, false
	}

	var total float64
	for _, p := range points {
		d, _ := NearestSegmentDistance(p, polyline)
		total += d
	}
	return total / float64(len(points)), true
}

// PolylineLength sums the segment lengths of an ordered point sequence
func PolylineLength(points []Vec2) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += V2Dist(points[i-1], points[i])
	}
	return length
}

// Bounds returns the axis-aligned bounding box of the points
func Bounds(points []Vec2) (min, max Vec2) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
