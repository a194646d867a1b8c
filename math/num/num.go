// Package num provides generic numeric helpers shared across the torus,
// polynomial and gadget-decomposition layers.
package num

import "math/bits"

// Integer is a constraint satisfied by any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IsPowerOfTwo returns whether x is a power of two.
// Zero is not a power of two.
func IsPowerOfTwo[T Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns the base-2 logarithm of x, assuming x is a power of two.
func Log2[T Integer](x T) int {
	switch any(x).(type) {
	case uint64:
		return bits.Len64(uint64(x)) - 1
	default:
		return bits.Len(uint(x)) - 1
	}
}

// SizeT returns the bit width of T.
func SizeT[T Integer]() int {
	var z T
	switch any(z).(type) {
	case uint32, int32:
		return 32
	case uint64, int64, int, uint:
		return 64
	case uint16, int16:
		return 16
	case uint8, int8:
		return 8
	default:
		return 64
	}
}

// DivRound returns round(x / y) for positive integers, breaking ties away
// from zero.
func DivRound[T Integer](x, y T) T {
	return (x + y/2) / y
}

// Min returns the smaller of a and b.
func Min[T Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Sqrt returns floor(sqrt(x)) for a non-negative integer x.
func Sqrt(x int) int {
	if x <= 0 {
		return 0
	}
	r := 0
	for r*r <= x {
		r++
	}
	return r - 1
}
