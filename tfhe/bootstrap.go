package tfhe

import (
	"github.com/sp301415/tfhe-go/math/num"
	"github.com/sp301415/tfhe-go/math/poly"
)

// ModSwitch maps a torus value from 𝕋 to ℤ/(2N) by scaling and rounding
// (§4.7 step 1): round(x * 2N).
func ModSwitch[T TorusInt](x T, logPolyDegree int) int {
	// x represents x_real = x / 2^sizeT. We want round(x_real * 2N) =
	// round(x * 2N / 2^sizeT) = round(x >> (sizeT - logPolyDegree - 1)).
	shift := num.SizeT[T]() - logPolyDegree - 1
	if shift <= 0 {
		return int(x) << (-shift)
	}
	rounded := num.DivRound(x, T(1)<<shift)
	return int(rounded)
}

// ModSwitchTLWE maps every coordinate of ct from 𝕋 to ℤ/(2N).
func ModSwitchTLWE[T TorusInt](ct TLWESample[T], logPolyDegree int) (aTilde []int, bTilde int) {
	aTilde = make([]int, len(ct.A))
	for i := range ct.A {
		aTilde[i] = ModSwitch(ct.A[i], logPolyDegree)
	}
	bTilde = ModSwitch(ct.B, logPolyDegree)
	return aTilde, bTilde
}

// BlindRotateAssign runs the blind-rotation loop of §4.7 step 2: initialize
// the accumulator to a trivial encryption of the test polynomial rotated by
// -bTilde, then for each bootstrapping-key bit, CMux the accumulator
// against its rotation by X^{aTilde[i]}.
//
// This is the corrected version of the "suspected bug" in §9: the source's
// `acc = bk.bk[i].cmux(&acc, &acc)` feeds the identical sample into both
// CMux branches, so no rotation is ever applied. Here, the second branch is
// genuinely `X^{aTilde[i]} * acc`, computed into a distinct buffer before
// the CMux call.
func BlindRotateAssign[T TorusInt](pe *poly.Evaluator[T], gadget GadgetParameters[T], bk BootstrappingKey[T], aTilde []int, bTilde int, lut LookUpTable[T], accOut GLWESample[T]) {
	k := len(accOut.A)
	N := lut.Value.Degree()
	dec := NewDecomposer[T](gadget)

	rotated := lut.Value.Copy()
	pe.MonomialMulAssign(lut.Value, -bTilde, rotated)

	acc := TrivialGLWE[T](rotated, k)
	rotatedAcc := NewGLWESample[T](k, N)

	for i := range aTilde {
		MonomialMulGLWEAssign(pe, acc, aTilde[i], rotatedAcc)

		next := NewGLWESample[T](k, N)
		CMuxGGSWAssign(pe, dec, bk.Value[i], acc, rotatedAcc, next)
		acc = next
	}

	for i := range accOut.A {
		pe.CopyFrom(acc.A[i], accOut.A[i])
	}
	pe.CopyFrom(acc.B, accOut.B)
}

// Bootstrap runs a full programmable bootstrap: modulus switch, blind
// rotation, sample extraction, and (per params.BootstrapOrder) key
// switching, evaluating lut on the input ciphertext's encoded message
// (§4.7).
func Bootstrap[T TorusInt](pe *poly.Evaluator[T], ek EvaluationKey[T], params TLWEParameters[T], ct TLWESample[T], lut LookUpTable[T]) TLWESample[T] {
	switch params.BootstrapOrder() {
	case OrderKeySwitchBlindRotate:
		small := NewTLWESample[T](params.LWEDimension())
		KeySwitchAssign(ek.KeySwitchKey, ct, params.LWEDimension(), small)
		return blindRotateAndExtract(pe, ek, params, small, lut)
	default:
		extracted := blindRotateAndExtract(pe, ek, params, ct, lut)
		out := NewTLWESample[T](params.LWEDimension())
		KeySwitchAssign(ek.KeySwitchKey, extracted, params.LWEDimension(), out)
		return out
	}
}

func blindRotateAndExtract[T TorusInt](pe *poly.Evaluator[T], ek EvaluationKey[T], params TLWEParameters[T], ct TLWESample[T], lut LookUpTable[T]) TLWESample[T] {
	aTilde, bTilde := ModSwitchTLWE(ct, params.LogPolyDegree())

	acc := NewGLWESample[T](params.GLWERank(), params.PolyDegree())
	BlindRotateAssign(pe, params.BlindRotateParameters(), ek.BootstrapKey, aTilde, bTilde, lut, acc)

	extracted := NewTLWESample[T](params.GLWEDimension())
	SampleExtractAssign(acc, extracted)
	return extracted
}
