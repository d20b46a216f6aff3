package vmath

import "math/bits"

// Q32.32 fixed point, used for exact grid stepping
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
)

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// Mul multiplies two Q32.32 values through a 128 bit intermediate
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := abs64(a), abs64(b)

	hi, lo := bits.Mul64(ua, ub)
	result := int64((hi << 32) | (lo >> 32))
	if negative {
		return -result
	}
	return result
}

// Div divides two Q32.32 values, 0 on division by zero
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := abs64(a), abs64(b)

	hi, lo := ua>>32, ua<<32
	if hi >= ub {
		return saturate(negative)
	}
	q, _ := bits.Div64(hi, lo, ub)
	if q > 1<<63-1 {
		return saturate(negative)
	}
	if negative {
		return -int64(q)
	}
	return int64(q)
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func saturate(negative bool) int64 {
	if negative {
		return -(1<<63 - 1)
	}
	return 1<<63 - 1
}
