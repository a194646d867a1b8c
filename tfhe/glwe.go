package tfhe

import (
	"github.com/sp301415/tfhe-go/math/csprng"
	"github.com/sp301415/tfhe-go/math/poly"
)

// GLWESecretKey is a length-k vector of ring elements, the polynomial
// analogue of TLWESecretKey used by the blind-rotation accumulator (§9,
// design note on "Generic polynomial TLWE").
type GLWESecretKey[T TorusInt] struct {
	Value []poly.Poly[T]
}

// GLWESample is a pair (A ∈ (𝕋[X]/(X^N+1))^k, B ∈ 𝕋[X]/(X^N+1)) with
// invariant B = Σ A_i·S_i + M + E, the ring-valued generalization of a
// TLWESample (§9, option (a): distinct flat and ring types sharing the same
// operation vocabulary).
type GLWESample[T TorusInt] struct {
	A []poly.Poly[T]
	B poly.Poly[T]
}

// NewGLWESample allocates a zero GLWESample of rank k and degree N.
func NewGLWESample[T TorusInt](k, N int) GLWESample[T] {
	a := make([]poly.Poly[T], k)
	for i := range a {
		a[i] = poly.NewPoly[T](N)
	}
	return GLWESample[T]{A: a, B: poly.NewPoly[T](N)}
}

// Copy returns a deep copy of ct.
func (ct GLWESample[T]) Copy() GLWESample[T] {
	out := NewGLWESample[T](len(ct.A), ct.B.Degree())
	for i := range ct.A {
		out.A[i] = ct.A[i].Copy()
	}
	out.B = ct.B.Copy()
	return out
}

// TrivialGLWE returns a trivial GLWE encryption (0, M): no key, no secrecy
// (§3, §4.4 lifted to the ring case). Used to seed the blind-rotation
// accumulator with the rotated test polynomial.
func TrivialGLWE[T TorusInt](m poly.Poly[T], k int) GLWESample[T] {
	out := NewGLWESample[T](k, m.Degree())
	out.B = m.Copy()
	return out
}

// GLWEEncryptor draws GLWE secret keys and ciphertexts.
type GLWEEncryptor[T TorusInt] struct {
	Params TLWEParameters[T]

	PolyEvaluator *poly.Evaluator[T]

	Uniform  *csprng.UniformSampler[T]
	Binary   *csprng.BinarySampler[T]
	Ternary  *csprng.TernarySampler[T]
	Gaussian *csprng.GaussianSampler[T]
}

// NewGLWEEncryptor allocates a GLWEEncryptor seeded from crypto/rand.
func NewGLWEEncryptor[T TorusInt](params TLWEParameters[T]) *GLWEEncryptor[T] {
	return &GLWEEncryptor[T]{
		Params:        params,
		PolyEvaluator: poly.NewEvaluator[T](params.PolyDegree()),
		Uniform:       csprng.NewUniformSampler[T](),
		Binary:        csprng.NewBinarySampler[T](),
		Ternary:       csprng.NewTernarySampler[T](),
		Gaussian:      csprng.NewGaussianSampler[T](),
	}
}

// ShallowCopy returns a copy of e with independent scratch buffers and
// samplers, safe for concurrent use by another goroutine (the teacher's
// parallel-keygen idiom, encryptor.go's ShallowCopy).
func (e *GLWEEncryptor[T]) ShallowCopy() *GLWEEncryptor[T] {
	return NewGLWEEncryptor[T](e.Params)
}

// GenSecretKey draws a fresh rank-k GLWE secret key per
// Params.GLWESecretKeyDistribution.
func (e *GLWEEncryptor[T]) GenSecretKey() GLWESecretKey[T] {
	sk := GLWESecretKey[T]{Value: make([]poly.Poly[T], e.Params.GLWERank())}
	for i := range sk.Value {
		sk.Value[i] = poly.NewPoly[T](e.Params.PolyDegree())
		if e.Params.GLWESecretKeyDistribution() == SecretKeyTernary {
			e.Ternary.SamplePolyAssign(sk.Value[i])
		} else {
			e.Binary.SamplePolyAssign(sk.Value[i])
		}
	}
	return sk
}

// Encrypt returns a fresh GLWE encryption of m under sk.
func (e *GLWEEncryptor[T]) Encrypt(m poly.Poly[T], sk GLWESecretKey[T]) GLWESample[T] {
	ct := NewGLWESample[T](e.Params.GLWERank(), e.Params.PolyDegree())

	sum := e.PolyEvaluator.NewPoly()
	for i := range ct.A {
		e.Uniform.SamplePolyAssign(ct.A[i])
		tmp := e.PolyEvaluator.NewPoly()
		e.PolyEvaluator.MulAssign(ct.A[i], sk.Value[i], tmp)
		e.PolyEvaluator.AddAssign(sum, tmp, sum)
	}

	e.PolyEvaluator.AddAssign(sum, m, ct.B)
	e.Gaussian.SampleSliceAddAssign(e.Params.GLWEStdDev(), ct.B.Coeffs)
	return ct
}

// Phase returns B - Σ A_i·S_i, which equals M + E for a valid ciphertext.
func (e *GLWEEncryptor[T]) Phase(ct GLWESample[T], sk GLWESecretKey[T]) poly.Poly[T] {
	sum := e.PolyEvaluator.NewPoly()
	for i := range ct.A {
		tmp := e.PolyEvaluator.NewPoly()
		e.PolyEvaluator.MulAssign(ct.A[i], sk.Value[i], tmp)
		e.PolyEvaluator.AddAssign(sum, tmp, sum)
	}
	out := e.PolyEvaluator.NewPoly()
	e.PolyEvaluator.SubAssign(ct.B, sum, out)
	return out
}

// AddGLWEAssign computes ctOut = ct0 + ct1.
func AddGLWEAssign[T TorusInt](ct0, ct1, ctOut GLWESample[T]) {
	for i := range ctOut.A {
		for j := range ctOut.A[i].Coeffs {
			ctOut.A[i].Coeffs[j] = ct0.A[i].Coeffs[j] + ct1.A[i].Coeffs[j]
		}
	}
	for j := range ctOut.B.Coeffs {
		ctOut.B.Coeffs[j] = ct0.B.Coeffs[j] + ct1.B.Coeffs[j]
	}
}

// SubGLWEAssign computes ctOut = ct0 - ct1.
func SubGLWEAssign[T TorusInt](ct0, ct1, ctOut GLWESample[T]) {
	for i := range ctOut.A {
		for j := range ctOut.A[i].Coeffs {
			ctOut.A[i].Coeffs[j] = ct0.A[i].Coeffs[j] - ct1.A[i].Coeffs[j]
		}
	}
	for j := range ctOut.B.Coeffs {
		ctOut.B.Coeffs[j] = ct0.B.Coeffs[j] - ct1.B.Coeffs[j]
	}
}

// MonomialMulGLWEAssign computes ctOut = X^d * ct0, negacyclically rotating
// every mask and body polynomial by d positions (§4.7 step 2's "X^{ã_i}·acc"
// operation).
func MonomialMulGLWEAssign[T TorusInt](pe *poly.Evaluator[T], ct0 GLWESample[T], d int, ctOut GLWESample[T]) {
	for i := range ctOut.A {
		pe.MonomialMulAssign(ct0.A[i], d, ctOut.A[i])
	}
	pe.MonomialMulAssign(ct0.B, d, ctOut.B)
}

// SampleExtractAssign extracts the constant (degree-0) coefficient of a
// GLWESample as a flat TLWESample under the equivalent flattened secret key
// (§4.7 step 3: "Extract the constant coefficient of the resulting
// polynomial TLWE as an ordinary TLWE sample").
//
// This replaces the source's placeholder extraction (§9) with the standard
// procedure: extracting coefficient 0 of B_i(X) requires the *negacyclic
// reversal* of A_i(X)'s coefficients, because the coefficient of X^0 in the
// product A_i(X)*S_i(X) mod (X^N+1) is
//
//	Σ_{j=0}^{N-1} A_i[j] * S_i[(N-j) mod N] * sign(j>0 ? -1 : 1)
//
// i.e. dot(A_i, reverse-and-negate(S_i)).
func SampleExtractAssign[T TorusInt](ct GLWESample[T], out TLWESample[T]) {
	k := len(ct.A)
	N := ct.B.Degree()

	idx := 0
	for i := 0; i < k; i++ {
		out.A[idx] = ct.A[i].Coeffs[0]
		for j := 1; j < N; j++ {
			out.A[idx+j] = -ct.A[i].Coeffs[N-j]
		}
		idx += N
	}
	out.B = ct.B.Coeffs[0]
}

// FlattenSecretKey builds the flat TLWESecretKey equivalent to a GLWESecretKey,
// by simply concatenating each ring secret's coefficients (the extraction
// dimension is k*N).
func FlattenSecretKey[T TorusInt](sk GLWESecretKey[T]) TLWESecretKey[T] {
	out := TLWESecretKey[T]{Value: make([]T, 0, len(sk.Value)*sk.Value[0].Degree())}
	for i := range sk.Value {
		out.Value = append(out.Value, sk.Value[i].Coeffs...)
	}
	return out
}
