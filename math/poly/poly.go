// Package poly implements arithmetic in the negacyclic polynomial ring
// Z[X]/(X^N + 1), over the torus-representable integer types.
package poly

import (
	"github.com/sp301415/tfhe-go/math/num"
	"github.com/sp301415/tfhe-go/math/vec"
)

// Number is a constraint satisfied by any torus-representable integer.
type Number interface {
	~uint32 | ~uint64
}

// Poly is a polynomial in Z[X]/(X^N + 1), represented by its N coefficients
// in ascending degree order.
type Poly[T Number] struct {
	Coeffs []T
}

// NewPoly allocates a zero polynomial of degree N.
func NewPoly[T Number](N int) Poly[T] {
	return Poly[T]{Coeffs: make([]T, N)}
}

// Degree returns the ring degree N of p.
func (p Poly[T]) Degree() int {
	return len(p.Coeffs)
}

// Copy returns a deep copy of p.
func (p Poly[T]) Copy() Poly[T] {
	pCopy := NewPoly[T](p.Degree())
	vec.CopyAssign(p.Coeffs, pCopy.Coeffs)
	return pCopy
}

// Evaluator carries scratch buffers for schoolbook negacyclic multiplication
// over a fixed ring degree N.
//
// Evaluator is not safe for concurrent use by multiple goroutines; each
// goroutine should hold a ShallowCopy.
type Evaluator[T Number] struct {
	degree int

	buff polyBuffer[T]
}

type polyBuffer[T Number] struct {
	mulBuf Poly[T]
}

// NewEvaluator allocates an Evaluator for the ring Z[X]/(X^N + 1).
// N must be a power of two.
func NewEvaluator[T Number](N int) *Evaluator[T] {
	if !num.IsPowerOfTwo(N) {
		panic("poly: ring degree must be a power of two")
	}

	return &Evaluator[T]{
		degree: N,
		buff: polyBuffer[T]{
			mulBuf: NewPoly[T](N),
		},
	}
}

// Degree returns the ring degree this Evaluator was configured for.
func (e *Evaluator[T]) Degree() int {
	return e.degree
}

// ShallowCopy returns a copy of e with fresh scratch buffers, safe to use
// concurrently with the original.
func (e *Evaluator[T]) ShallowCopy() *Evaluator[T] {
	return NewEvaluator[T](e.degree)
}

// NewPoly allocates a zero polynomial sized for this Evaluator's ring.
func (e *Evaluator[T]) NewPoly() Poly[T] {
	return NewPoly[T](e.degree)
}

// Clear sets every coefficient of p to zero.
func (e *Evaluator[T]) Clear(p Poly[T]) {
	vec.Fill(p.Coeffs, T(0))
}

// CopyFrom copies p0 into pOut.
func (e *Evaluator[T]) CopyFrom(p0, pOut Poly[T]) {
	vec.CopyAssign(p0.Coeffs, pOut.Coeffs)
}

// AddAssign computes pOut = p0 + p1.
func (e *Evaluator[T]) AddAssign(p0, p1, pOut Poly[T]) {
	vec.AddAssign(p0.Coeffs, p1.Coeffs, pOut.Coeffs)
}

// SubAssign computes pOut = p0 - p1.
func (e *Evaluator[T]) SubAssign(p0, p1, pOut Poly[T]) {
	vec.SubAssign(p0.Coeffs, p1.Coeffs, pOut.Coeffs)
}

// NegAssign computes pOut = -p0.
func (e *Evaluator[T]) NegAssign(p0, pOut Poly[T]) {
	vec.NegAssign(p0.Coeffs, pOut.Coeffs)
}

// ScalarMulAssign computes pOut = c * p0.
func (e *Evaluator[T]) ScalarMulAssign(p0 Poly[T], c T, pOut Poly[T]) {
	vec.ScalarMulAssign(p0.Coeffs, c, pOut.Coeffs)
}

// ScalarMulAddAssign computes pOut += c * p0.
func (e *Evaluator[T]) ScalarMulAddAssign(p0 Poly[T], c T, pOut Poly[T]) {
	vec.ScalarMulAddAssign(p0.Coeffs, c, pOut.Coeffs)
}

// ScalarMulSubAssign computes pOut -= c * p0.
func (e *Evaluator[T]) ScalarMulSubAssign(p0 Poly[T], c T, pOut Poly[T]) {
	vec.ScalarMulSubAssign(p0.Coeffs, c, pOut.Coeffs)
}

// MonomialMulAssign computes pOut = X^d * p0 in Z[X]/(X^N + 1), where d may
// be negative. This implements the negacyclic wraparound: coefficients that
// cross the degree-N boundary are negated.
func (e *Evaluator[T]) MonomialMulAssign(p0 Poly[T], d int, pOut Poly[T]) {
	N := e.degree
	d = ((d % (2 * N)) + 2*N) % (2 * N)

	if &p0.Coeffs[0] == &pOut.Coeffs[0] {
		e.CopyFrom(p0, e.buff.mulBuf)
		p0 = e.buff.mulBuf
	}

	for i := 0; i < N; i++ {
		j := i + d
		if j < N {
			pOut.Coeffs[j] = p0.Coeffs[i]
		} else if j < 2*N {
			pOut.Coeffs[j-N] = -p0.Coeffs[i]
		} else {
			pOut.Coeffs[j-2*N] = p0.Coeffs[i]
		}
	}
}

// MonomialMulSubAssign computes pOut -= X^d * p0.
func (e *Evaluator[T]) MonomialMulSubAssign(p0 Poly[T], d int, pOut Poly[T]) {
	tmp := e.NewPoly()
	e.MonomialMulAssign(p0, d, tmp)
	e.SubAssign(pOut, tmp, pOut)
}

// MulAssign computes pOut = p0 * p1 in Z[X]/(X^N + 1) using schoolbook
// negacyclic convolution.
//
// This is O(N^2); an FFT or NTT-accelerated Evaluator is a documented
// extension point but is not implemented here.
func (e *Evaluator[T]) MulAssign(p0, p1, pOut Poly[T]) {
	N := e.degree

	var buf Poly[T]
	if sameBacking(p0, pOut) || sameBacking(p1, pOut) {
		buf = e.buff.mulBuf
		e.Clear(buf)
	} else {
		buf = pOut
		e.Clear(buf)
	}

	for i := 0; i < N; i++ {
		if p0.Coeffs[i] == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			k := i + j
			if k < N {
				buf.Coeffs[k] += p0.Coeffs[i] * p1.Coeffs[j]
			} else {
				buf.Coeffs[k-N] -= p0.Coeffs[i] * p1.Coeffs[j]
			}
		}
	}

	if &buf.Coeffs[0] != &pOut.Coeffs[0] {
		e.CopyFrom(buf, pOut)
	} else {
		vec.CopyAssign(buf.Coeffs, pOut.Coeffs)
	}
}

// MulAddAssign computes pOut += p0 * p1.
func (e *Evaluator[T]) MulAddAssign(p0, p1, pOut Poly[T]) {
	tmp := e.NewPoly()
	e.MulAssign(p0, p1, tmp)
	e.AddAssign(pOut, tmp, pOut)
}

// MulSubAssign computes pOut -= p0 * p1.
func (e *Evaluator[T]) MulSubAssign(p0, p1, pOut Poly[T]) {
	tmp := e.NewPoly()
	e.MulAssign(p0, p1, tmp)
	e.SubAssign(pOut, tmp, pOut)
}

func sameBacking[T Number](p0, p1 Poly[T]) bool {
	if len(p0.Coeffs) == 0 || len(p1.Coeffs) == 0 {
		return false
	}
	return &p0.Coeffs[0] == &p1.Coeffs[0]
}
