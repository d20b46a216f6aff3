package vmath

import (
	"math"
	"testing"
)

func TestDistPointSegmentClampsToEndpoints(t *testing.T) {
	a, b := V2(0, 0), V2(10, 0)
	cases := []struct {
		p    Vec2
		want float64
	}{
		{V2(5, 0), 0},
		{V2(5, 3), 3},
		{V2(-3, 4), 5},  // beyond a, distance to endpoint not to the infinite line
		{V2(13, -4), 5}, // beyond b
	}
	for _, c := range cases {
		if got := DistPointSegment(c.p, a, b); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("DistPointSegment(%v): expected %v, got %v", c.p, c.want, got)
		}
	}

	if got := DistPointSegment(V2(3, 4), V2(0, 0), V2(0, 0)); got != 5 {
		t.Errorf("Expected degenerate segment to use point distance 5, got %v", got)
	}
}

func TestNearestSegmentDistance(t *testing.T) {
	square := []Vec2{V2(0, 0), V2(4, 0), V2(4, 4), V2(0, 4)}
	d, ok := NearestSegmentDistance(V2(3, 2), square)
	if !ok || d != 1 {
		t.Errorf("Expected 1 to the right edge, got %v %v", d, ok)
	}

	if _, ok := NearestSegmentDistance(V2(0, 0), []Vec2{V2(1, 1)}); ok {
		t.Error("Expected single point polyline to be rejected")
	}
	if d, ok := NearestSegmentDistance(V2(0, 0), nil); ok || !math.IsInf(d, 1) {
		t.Errorf("Expected +Inf for empty polyline, got %v", d)
	}
}

func TestMeanNearestDistance(t *testing.T) {
	line := []Vec2{V2(0, 0), V2(10, 0)}
	mean, ok := MeanNearestDistance([]Vec2{V2(1, 1), V2(2, 3)}, line)
	if !ok || mean != 2 {
		t.Errorf("Expected mean 2, got %v %v", mean, ok)
	}
	if _, ok := MeanNearestDistance(nil, line); ok {
		t.Error("Expected empty sample set to be rejected")
	}
}

func TestPolylineLengthAndBounds(t *testing.T) {
	pts := []Vec2{V2(0, 0), V2(3, 4), V2(3, -1)}
	if l := PolylineLength(pts); l != 10 {
		t.Errorf("Expected length 10, got %v", l)
	}
	min, max := Bounds(pts)
	if min != V2(0, -1) || max != V2(3, 4) {
		t.Errorf("Expected bounds (0,-1)-(3,4), got %v-%v", min, max)
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		v := r.Range(15, 25)
		if v < 15 || v >= 25 {
			t.Fatalf("Expected value in [15,25), got %v", v)
		}
	}
	if r.Range(3, 3) != 3 {
		t.Error("Expected empty range to return min")
	}

	a, b := NewFastRand(99), NewFastRand(99)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}
