package tfhe

import "github.com/sp301415/tfhe-go/math/num"

// Gate-layer bit encoding (§4.8): false -> μ = -1/8 (≡ 7/8), true -> μ =
// +1/8. Symmetric about zero, so negation (NOT) preserves the encoding
// exactly.
func muEighth[T TorusInt]() T {
	return T(1) << (num.SizeT[T]() - 3)
}

func muGate[T TorusInt](v bool) T {
	if v {
		return muEighth[T]()
	}
	return -muEighth[T]()
}

// andOrLUT builds the constant LookUpTable shared by AND and OR: their
// pre-combine biases place the "true" input combinations in the lower half
// of ℤ/2N relative to this LUT's +1/8 constant, and "false" combinations in
// the upper half, where the negacyclic wraparound flips it to -1/8.
func andOrLUT[T TorusInt](params TLWEParameters[T]) LookUpTable[T] {
	lut := NewLookUpTable(params)
	GenFlatLookUpTableAssign(muGate[T](true), lut)
	return lut
}

// nandLUT builds the constant LookUpTable used by NAND alone. NAND's +5/8
// pre-combine bias places its input combinations in the opposite ℤ/2N
// halves from AND/OR, so it needs the sign-flipped constant -1/8 rather
// than sharing andOrLUT.
func nandLUT[T TorusInt](params TLWEParameters[T]) LookUpTable[T] {
	lut := NewLookUpTable(params)
	GenFlatLookUpTableAssign(muGate[T](false), lut)
	return lut
}

// xorLUT builds the banded LookUpTable used by XOR: true on the middle
// half, false on the outer quarters.
func xorLUT[T TorusInt](params TLWEParameters[T]) LookUpTable[T] {
	lut := NewLookUpTable(params)
	GenBandLookUpTableAssign(muGate[T](false), muGate[T](true), lut)
	return lut
}

// NAND returns an encryption of NOT(a AND b) (§4.8: pre-combine (0,5/8) - a
// - b, bootstrap with NAND's own constant LUT).
func (ev *Evaluator[T]) NAND(a, b TLWESample[T]) TLWESample[T] {
	bias := TrivialTLWE[T](5*muEighth[T](), len(a.A))
	combined := SubTLWE(SubTLWE(bias, a), b)
	return ev.bootstrapGate(combined, nandLUT[T](ev.Params))
}

// AND returns an encryption of a AND b (§4.8: pre-combine (0,-1/8) + a + b).
func (ev *Evaluator[T]) AND(a, b TLWESample[T]) TLWESample[T] {
	bias := TrivialTLWE[T](-muEighth[T](), len(a.A))
	combined := AddTLWE(AddTLWE(bias, a), b)
	return ev.bootstrapGate(combined, andOrLUT[T](ev.Params))
}

// OR returns an encryption of a OR b (§4.8: pre-combine (0,1/8) + a + b).
func (ev *Evaluator[T]) OR(a, b TLWESample[T]) TLWESample[T] {
	bias := TrivialTLWE[T](muEighth[T](), len(a.A))
	combined := AddTLWE(AddTLWE(bias, a), b)
	return ev.bootstrapGate(combined, andOrLUT[T](ev.Params))
}

// XOR returns an encryption of a XOR b (§4.8: pre-combine 2*(a+b) +
// (0,1/4), bootstrap with the banded LUT).
func (ev *Evaluator[T]) XOR(a, b TLWESample[T]) TLWESample[T] {
	sum := AddTLWE(a, b)
	doubled := ScalarMulTLWE(sum, 2)
	quarter := T(1) << (num.SizeT[T]() - 2)
	combined := AddConstTLWE(doubled, quarter)
	return ev.bootstrapGate(combined, xorLUT[T](ev.Params))
}

// NOT returns an encryption of NOT a. No bootstrap is required: negation is
// an exact affine transform that preserves the symmetric ±1/8 encoding
// (§4.8).
func NOT[T TorusInt](a TLWESample[T]) TLWESample[T] {
	return NegTLWE(a)
}

// MUX returns an encryption of a if s decrypts true, b if s decrypts false:
// AND(s,a) XOR AND(NOT s, b) (§4.8).
func (ev *Evaluator[T]) MUX(s, a, b TLWESample[T]) TLWESample[T] {
	left := ev.AND(s, a)
	right := ev.AND(NOT(s), b)
	return ev.XOR(left, right)
}

// bootstrapGate runs a programmable bootstrap against the caller-supplied
// LUT. Each gate picks its own LUT explicitly: NAND and AND/OR need
// oppositely-signed constant LUTs (their pre-combine biases place input
// combinations in opposite ℤ/2N halves), so there is no single "default"
// gate LUT to fall back to.
func (ev *Evaluator[T]) bootstrapGate(ct TLWESample[T], lut LookUpTable[T]) TLWESample[T] {
	return Bootstrap(ev.PolyEvaluator, ev.EvalKey, ev.Params, ct, lut)
}
