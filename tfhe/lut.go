package tfhe

import "github.com/sp301415/tfhe-go/math/poly"

// LookUpTable is the test polynomial driving a programmable bootstrap: a
// length-N table of torus values defining a lookup f: ℤ/N -> 𝕋 (§4.7).
type LookUpTable[T TorusInt] struct {
	Value poly.Poly[T]
}

// NewLookUpTable allocates a zero LookUpTable for the given parameters.
func NewLookUpTable[T TorusInt](params TLWEParameters[T]) LookUpTable[T] {
	return LookUpTable[T]{Value: poly.NewPoly[T](params.PolyDegree())}
}

// GenLookUpTableAssign fills lut with scale * f(x) for each message x in
// [0, messageModulus). Message x corresponds to ℤ/2N position
// x*N/messageModulus, and each slot occupies N/messageModulus consecutive
// lookup-table entries centred on that position. Positions in [N, 2N) read
// the negated entry N positions earlier (X^N = -1), so only the lower half
// of ℤ/2N carries f's values.
func GenLookUpTableAssign[T TorusInt](f func(int) int, messageModulus uint64, scale T, lut LookUpTable[T]) {
	N := lut.Value.Degree()
	boxSize := N / int(messageModulus)

	for x := 0; x < int(messageModulus); x++ {
		y := T(int64(f(x))) * scale
		for i := x * boxSize; i < (x+1)*boxSize; i++ {
			lut.Value.Coeffs[i] = y
		}
	}

	// Negacyclic rotation by half a box, N/(2*messageModulus), aligns the
	// lookup so that decomposed phase 0 lands in the middle of the first box
	// instead of on a boundary, avoiding off-by-one errors from rounding
	// during modulus switching. Entries that wrap around are negated, as
	// multiplication by X^{-half} does in Z[X]/(X^N + 1).
	half := N / (2 * int(messageModulus))
	rotateLeft(lut.Value.Coeffs, half)
	for i := N - half; i < N; i++ {
		lut.Value.Coeffs[i] = -lut.Value.Coeffs[i]
	}
}

func rotateLeft[T TorusInt](v []T, d int) {
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
		tmp[i] = v[(i+d)%n]
	}
	copy(v, tmp)
}

// GenFlatLookUpTableAssign fills lut with a constant test vector: every
// coefficient is set to value. Blind rotation extracts TP[i] = lut[i] for
// i < N but TP[i] = -lut[i-N] for i in [N, 2N) (the negacyclic wraparound
// forced by X^N = -1 in the ring), so a constant test polynomial already
// realizes a genuine torus half-split: +value on the lower half of ℤ/2N,
// -value on the upper half, with no further partitioning needed (§4.8's
// "test vector (two flat regions)", used by NAND/AND/OR).
func GenFlatLookUpTableAssign[T TorusInt](value T, lut LookUpTable[T]) {
	N := lut.Value.Degree()
	for i := 0; i < N; i++ {
		lut.Value.Coeffs[i] = value
	}
}

// GenBandLookUpTableAssign fills lut with a centered-band test vector: the
// middle half of the N table entries (indices [N/4, 3N/4)) holds valueIn,
// the two outer quarters valueOut (§4.8's "true on middle half, false on
// outer", used by XOR). Positions in [N, 2N) of ℤ/2N read these values
// negated.
func GenBandLookUpTableAssign[T TorusInt](valueOut, valueIn T, lut LookUpTable[T]) {
	N := lut.Value.Degree()
	for i := 0; i < N; i++ {
		lut.Value.Coeffs[i] = valueOut
	}
	for i := N / 4; i < 3*N/4; i++ {
		lut.Value.Coeffs[i] = valueIn
	}
}
