package tfhe

import (
	"github.com/sp301415/tfhe-go/math/num"
	"github.com/sp301415/tfhe-go/math/poly"
)

// Decomposer computes signed-balanced base-B_g gadget decompositions (§4.5).
//
// For a torus value v, the decomposition is ℓ signed digits d_0, ..., d_{ℓ-1}
// with |d_j| <= B_g/2 such that Σ d_j * B_g^{-(j+1)} ≈ v to precision
// B_g^{-ℓ}. Procedure: round v to the gadget precision, then repeatedly take
// V mod B_g, map a digit >= B_g/2 to digit - B_g with a carry into the next
// level, and shift.
type Decomposer[T TorusInt] struct {
	Params GadgetParameters[T]
}

// NewDecomposer allocates a Decomposer for the given gadget parameters.
func NewDecomposer[T TorusInt](params GadgetParameters[T]) *Decomposer[T] {
	return &Decomposer[T]{Params: params}
}

// DecomposeAssign writes the ℓ signed digits of v into dOut, most
// significant digit first (dOut[0] is the coarsest digit, matching the
// order in which gadget rows are indexed: row j carries scale
// B_g^{-(j+1)}).
func (d *Decomposer[T]) DecomposeAssign(v T, dOut []T) {
	base := d.Params.Base()
	halfBase := base / 2
	logLastScale := d.Params.LogLastScale()

	// Round v down to the precision the gadget can represent, carrying the
	// rounding into the lowest retained bit.
	rounded := num.DivRound(v, T(1)<<logLastScale) << logLastScale

	level := d.Params.Level()
	shift := logLastScale
	for j := level - 1; j >= 0; j-- {
		digit := (rounded >> shift) & (base - 1)
		signedDigit := T(digit)
		carry := T(0)
		if digit >= halfBase {
			signedDigit = digit - base
			carry = base
		}
		dOut[j] = signedDigit
		rounded += carry << shift
		shift += d.Params.BaseLog()
	}
}

// DecomposePolyAssign decomposes each coefficient of p0 independently,
// writing level j's digit polynomial into dOut[j].
func (d *Decomposer[T]) DecomposePolyAssign(p0 poly.Poly[T], dOut []poly.Poly[T]) {
	N := p0.Degree()
	level := d.Params.Level()

	digits := make([]T, level)
	for n := 0; n < N; n++ {
		d.DecomposeAssign(p0.Coeffs[n], digits)
		for j := 0; j < level; j++ {
			dOut[j].Coeffs[n] = digits[j]
		}
	}
}
