// Package vec implements generic slice arithmetic used by the polynomial
// and ciphertext layers.
package vec

// Number is a constraint satisfied by any torus-representable integer.
type Number interface {
	~uint32 | ~uint64
}

// Add returns v0 + v1, elementwise.
func Add[T Number](v0, v1 []T) []T {
	vOut := make([]T, len(v0))
	AddAssign(v0, v1, vOut)
	return vOut
}

// AddAssign computes vOut = v0 + v1, elementwise.
func AddAssign[T Number](v0, v1, vOut []T) {
	for i := range vOut {
		vOut[i] = v0[i] + v1[i]
	}
}

// Sub returns v0 - v1, elementwise.
func Sub[T Number](v0, v1 []T) []T {
	vOut := make([]T, len(v0))
	SubAssign(v0, v1, vOut)
	return vOut
}

// SubAssign computes vOut = v0 - v1, elementwise.
func SubAssign[T Number](v0, v1, vOut []T) {
	for i := range vOut {
		vOut[i] = v0[i] - v1[i]
	}
}

// Neg returns -v, elementwise.
func Neg[T Number](v []T) []T {
	vOut := make([]T, len(v))
	NegAssign(v, vOut)
	return vOut
}

// NegAssign computes vOut = -v, elementwise.
func NegAssign[T Number](v, vOut []T) {
	for i := range vOut {
		vOut[i] = -v[i]
	}
}

// ScalarMulAssign computes vOut = c * v, elementwise.
func ScalarMulAssign[T Number](v []T, c T, vOut []T) {
	for i := range vOut {
		vOut[i] = c * v[i]
	}
}

// ScalarMulAddAssign computes vOut += c * v, elementwise.
func ScalarMulAddAssign[T Number](v []T, c T, vOut []T) {
	for i := range vOut {
		vOut[i] += c * v[i]
	}
}

// ScalarMulSubAssign computes vOut -= c * v, elementwise.
func ScalarMulSubAssign[T Number](v []T, c T, vOut []T) {
	for i := range vOut {
		vOut[i] -= c * v[i]
	}
}

// Dot returns the inner product of v0 and v1 modulo the torus width of T.
func Dot[T Number](v0, v1 []T) T {
	var sum T
	for i := range v0 {
		sum += v0[i] * v1[i]
	}
	return sum
}

// CopyAssign copies v0 into vOut.
func CopyAssign[T any](v0, vOut []T) {
	copy(vOut, v0)
}

// Fill sets every element of v to x.
func Fill[T any](v []T, x T) {
	for i := range v {
		v[i] = x
	}
}

// ReverseAssign writes the reverse of v0 into vOut. v0 and vOut must not
// overlap.
func ReverseAssign[T any](v0, vOut []T) {
	n := len(v0)
	for i := 0; i < n; i++ {
		vOut[i] = v0[n-1-i]
	}
}

// RotateInPlace rotates v to the right by d positions, wrapping around.
// A negative d rotates to the left.
func RotateInPlace[T any](v []T, d int) {
	n := len(v)
	if n == 0 {
		return
	}
	d = ((d % n) + n) % n
	if d == 0 {
		return
	}
	tmp := make([]T, n)
	for i := 0; i < n; i++ {
		tmp[(i+d)%n] = v[i]
	}
	copy(v, tmp)
}
