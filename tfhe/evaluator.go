package tfhe

import "github.com/sp301415/tfhe-go/math/poly"

// Evaluator is the untrusted-cloud-side half of the gate-bootstrapping
// pipeline: it holds only the public EvaluationKey and Params, never a
// secret key, and runs the gate functions of §4.8 plus the low-level
// TLWE/TGSW operations of §6 ("for advanced users").
type Evaluator[T TorusInt] struct {
	Params  TLWEParameters[T]
	EvalKey EvaluationKey[T]

	PolyEvaluator *poly.Evaluator[T]
}

// NewEvaluator allocates an Evaluator around a published EvaluationKey.
func NewEvaluator[T TorusInt](params TLWEParameters[T], evk EvaluationKey[T]) *Evaluator[T] {
	return &Evaluator[T]{
		Params:        params,
		EvalKey:       evk,
		PolyEvaluator: poly.NewEvaluator[T](params.PolyDegree()),
	}
}

// ShallowCopy returns a copy of ev with a fresh scratch polynomial
// Evaluator, safe for use by another goroutine concurrently with ev (§5:
// "Evaluators may fork parallel tasks over independent gates").
func (ev *Evaluator[T]) ShallowCopy() *Evaluator[T] {
	return &Evaluator[T]{
		Params:        ev.Params,
		EvalKey:       ev.EvalKey,
		PolyEvaluator: ev.PolyEvaluator.ShallowCopy(),
	}
}

// AddLWE returns ct0 + ct1 (§6: "low-level TLWE/TGSW operations... for
// advanced users").
func (ev *Evaluator[T]) AddLWE(ct0, ct1 TLWESample[T]) TLWESample[T] {
	return AddTLWE(ct0, ct1)
}

// SubLWE returns ct0 - ct1.
func (ev *Evaluator[T]) SubLWE(ct0, ct1 TLWESample[T]) TLWESample[T] {
	return SubTLWE(ct0, ct1)
}

// ScalarMulLWE returns k * ct.
func (ev *Evaluator[T]) ScalarMulLWE(ct TLWESample[T], k int64) TLWESample[T] {
	return ScalarMulTLWE(ct, k)
}

// BootstrapLUT runs a full programmable bootstrap evaluating a prebuilt
// lut on ct's encoded message (§4.7), exposed for callers who need a custom
// lookup table rather than one of the fixed gate functions.
func (ev *Evaluator[T]) BootstrapLUT(ct TLWESample[T], lut LookUpTable[T]) TLWESample[T] {
	return Bootstrap(ev.PolyEvaluator, ev.EvalKey, ev.Params, ct, lut)
}

// BootstrapFunc builds a fresh LookUpTable from f (mapping
// Params.MessageModulus()'s domain to itself, scaled by Params.Scale()) and
// bootstraps ct against it in one step — the teacher's BootstrapFunc /
// BootstrapLUT split, adapted from bootstrap.go.
func (ev *Evaluator[T]) BootstrapFunc(ct TLWESample[T], f func(int) int) TLWESample[T] {
	lut := NewLookUpTable(ev.Params)
	GenLookUpTableAssign(f, ev.Params.MessageModulus(), ev.Params.Scale(), lut)
	return ev.BootstrapLUT(ct, lut)
}
