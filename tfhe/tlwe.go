package tfhe

import (
	"fmt"

	"github.com/sp301415/tfhe-go/math/csprng"
)

// TLWESecretKey is a length-n vector over the torus integer type, binary or
// ternary depending on Params.LWESecretKeyDistribution (§3).
type TLWESecretKey[T TorusInt] struct {
	Value []T
}

// TLWESample is a pair (a ∈ 𝕋^n, b ∈ 𝕋) with invariant
// b = Σ a_i·s_i + μ + e (§3). A trivial sample has a = 0 and b = μ exactly.
type TLWESample[T TorusInt] struct {
	A []T
	B T
}

// NewTLWESample allocates a zero TLWESample of dimension n.
func NewTLWESample[T TorusInt](n int) TLWESample[T] {
	return TLWESample[T]{A: make([]T, n), B: 0}
}

// Copy returns a deep copy of ct.
func (ct TLWESample[T]) Copy() TLWESample[T] {
	out := NewTLWESample[T](len(ct.A))
	copy(out.A, ct.A)
	out.B = ct.B
	return out
}

// TrivialTLWE returns a trivial TLWE sample (0, μ) of dimension n: no key, no
// secrecy, used for the gate layer's constant biases and to seed the
// key-switch accumulator (§3, §4.4).
//
// This is the non-buggy replacement for the source's
// fresh-secret-key-for-zero-ciphertext anti-pattern (§9): no key is drawn at
// all, since a is identically zero.
func TrivialTLWE[T TorusInt](mu T, n int) TLWESample[T] {
	return TLWESample[T]{A: make([]T, n), B: mu}
}

// TLWEEncryptor draws TLWE secret keys and ciphertexts under TLWEParameters.
type TLWEEncryptor[T TorusInt] struct {
	Params TLWEParameters[T]

	Uniform  *csprng.UniformSampler[T]
	Binary   *csprng.BinarySampler[T]
	Ternary  *csprng.TernarySampler[T]
	Gaussian *csprng.GaussianSampler[T]
}

// NewTLWEEncryptor allocates a TLWEEncryptor seeded from crypto/rand.
func NewTLWEEncryptor[T TorusInt](params TLWEParameters[T]) *TLWEEncryptor[T] {
	return &TLWEEncryptor[T]{
		Params:   params,
		Uniform:  csprng.NewUniformSampler[T](),
		Binary:   csprng.NewBinarySampler[T](),
		Ternary:  csprng.NewTernarySampler[T](),
		Gaussian: csprng.NewGaussianSampler[T](),
	}
}

// GenSecretKey draws a fresh length-n secret key per
// Params.LWESecretKeyDistribution.
func (e *TLWEEncryptor[T]) GenSecretKey() TLWESecretKey[T] {
	sk := TLWESecretKey[T]{Value: make([]T, e.Params.LWEDimension())}
	for i := range sk.Value {
		if e.Params.LWESecretKeyDistribution() == SecretKeyTernary {
			sk.Value[i] = e.Ternary.Sample()
		} else {
			sk.Value[i] = e.Binary.Sample()
		}
	}
	return sk
}

// dot returns Σ a_i·s_i over the torus type T (wraparound is the intended
// modulo-1 reduction).
func dot[T TorusInt](a []T, s []T) T {
	var sum T
	for i := range a {
		sum += a[i] * s[i]
	}
	return sum
}

// Encrypt returns a fresh TLWE encryption of μ under sk (§4.4).
func (e *TLWEEncryptor[T]) Encrypt(mu T, sk TLWESecretKey[T]) TLWESample[T] {
	ct := NewTLWESample[T](len(sk.Value))
	e.Uniform.SampleSliceAssign(ct.A)
	noise := e.Gaussian.Sample(e.Params.LWEStdDev())
	ct.B = dot(ct.A, sk.Value) + mu + noise
	return ct
}

// Phase returns b - Σ a_i·s_i, which equals μ + e for a valid ciphertext
// (§4.4).
func Phase[T TorusInt](ct TLWESample[T], sk TLWESecretKey[T]) T {
	return ct.B - dot(ct.A, sk.Value)
}

// DecryptBool returns true iff phase(ct, sk) lies in the (1/4, 3/4) bucket,
// the general-purpose bool decoding of §4.4 (μ_true = 1/2).
func DecryptBool[T TorusInt](ct TLWESample[T], sk TLWESecretKey[T]) bool {
	ph := Phase(ct, sk)
	return torusInBucket(ph)
}

// torusInBucket reports whether x, read as a fraction of the torus, lies in
// the open interval (1/4, 3/4).
func torusInBucket[T TorusInt](x T) bool {
	q := torusWidth[T]()
	lo := q/4 + 1
	hi := q - q/4
	return x > lo && x < hi
}

func torusWidth[T TorusInt]() T {
	var z T
	return ^z
}

func checkTLWEDimMatch[T TorusInt](a, b []T) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("tfhe: TLWE dimension mismatch: %d vs %d", len(a), len(b)))
	}
}

// AddTLWE returns ct0 + ct1, component-wise (§4.4).
func AddTLWE[T TorusInt](ct0, ct1 TLWESample[T]) TLWESample[T] {
	checkTLWEDimMatch(ct0.A, ct1.A)
	out := NewTLWESample[T](len(ct0.A))
	for i := range out.A {
		out.A[i] = ct0.A[i] + ct1.A[i]
	}
	out.B = ct0.B + ct1.B
	return out
}

// SubTLWE returns ct0 - ct1, component-wise (§4.4).
func SubTLWE[T TorusInt](ct0, ct1 TLWESample[T]) TLWESample[T] {
	checkTLWEDimMatch(ct0.A, ct1.A)
	out := NewTLWESample[T](len(ct0.A))
	for i := range out.A {
		out.A[i] = ct0.A[i] - ct1.A[i]
	}
	out.B = ct0.B - ct1.B
	return out
}

// NegTLWE returns -ct, component-wise. This is NOT's free affine transform
// (§4.8): it preserves the ±1/8 gate encoding exactly, since that encoding
// is symmetric about zero.
func NegTLWE[T TorusInt](ct TLWESample[T]) TLWESample[T] {
	out := NewTLWESample[T](len(ct.A))
	for i := range out.A {
		out.A[i] = -ct.A[i]
	}
	out.B = -ct.B
	return out
}

// ScalarMulTLWE returns k * ct, component-wise, for a signed integer k
// (§4.4).
func ScalarMulTLWE[T TorusInt](ct TLWESample[T], k int64) TLWESample[T] {
	out := NewTLWESample[T](len(ct.A))
	kt := T(k)
	for i := range out.A {
		out.A[i] = kt * ct.A[i]
	}
	out.B = kt * ct.B
	return out
}

// AddConstTLWE returns ct with c added to its b coordinate only: a TLWE
// encryption of phase(ct) + c.
func AddConstTLWE[T TorusInt](ct TLWESample[T], c T) TLWESample[T] {
	out := ct.Copy()
	out.B += c
	return out
}
