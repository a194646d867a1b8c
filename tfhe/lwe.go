package tfhe

import (
	"fmt"
	"math"

	"github.com/sp301415/tfhe-go/math/csprng"
)

// LWEParameters is the pedagogical, integer-modulus LWE parameter set of
// §4.3: dimension n, modulus q, and noise standard deviation σ (in units of
// q, i.e. 0 < σ < 1 represents a fraction of the modulus).
//
// This type is included for illustrative homomorphic addition only; the
// gate layer is built entirely on the torus-valued types in tlwe.go and
// never touches LWEParameters.
type LWEParameters struct {
	dimension int
	modulus   uint64
	stdDev    float64

	secretKeyDistribution SecretKeyDistribution
}

// NewLWEParameters validates and constructs an LWEParameters. Panics if n or
// q are not positive, or if σ is not positive.
func NewLWEParameters(dimension int, modulus uint64, stdDev float64, dist SecretKeyDistribution) LWEParameters {
	switch {
	case dimension <= 0:
		panic("tfhe: LWE dimension must be positive")
	case modulus == 0:
		panic("tfhe: LWE modulus must be positive")
	case stdDev <= 0:
		panic("tfhe: LWE standard deviation must be positive")
	}
	return LWEParameters{dimension: dimension, modulus: modulus, stdDev: stdDev, secretKeyDistribution: dist}
}

// Dimension returns n.
func (p LWEParameters) Dimension() int { return p.dimension }

// Modulus returns q.
func (p LWEParameters) Modulus() uint64 { return p.modulus }

// StdDev returns σ, as a fraction of q.
func (p LWEParameters) StdDev() float64 { return p.stdDev }

// LWESecretKey is a length-n vector of small integers, s ∈ {0,1}^n or
// {-1,0,1}^n depending on the configured distribution (§3).
type LWESecretKey struct {
	Value []int64
}

// LWECiphertext is a pair (a ∈ ℤ_q^n, b ∈ ℤ_q) with invariant
// b ≡ ⟨a,s⟩ + m + e (mod q) (§3).
type LWECiphertext struct {
	Params LWEParameters
	A      []uint64
	B      uint64
}

// LWEKeyGenerator draws secret keys and ciphertexts for LWEParameters.
type LWEKeyGenerator struct {
	Params LWEParameters

	uniform  *csprng.UniformSampler[uint64]
	binary   *csprng.BinarySampler[uint64]
	ternary  *csprng.TernarySampler[uint64]
	gaussian *csprng.GaussianSampler[uint64]
}

// NewLWEKeyGenerator allocates a generator for the given parameters, seeded
// from crypto/rand.
func NewLWEKeyGenerator(params LWEParameters) *LWEKeyGenerator {
	return &LWEKeyGenerator{
		Params:   params,
		uniform:  csprng.NewUniformSampler[uint64](),
		binary:   csprng.NewBinarySampler[uint64](),
		ternary:  csprng.NewTernarySampler[uint64](),
		gaussian: csprng.NewGaussianSampler[uint64](),
	}
}

// GenSecretKey draws a fresh LWESecretKey according to
// Params.secretKeyDistribution.
func (g *LWEKeyGenerator) GenSecretKey() LWESecretKey {
	sk := LWESecretKey{Value: make([]int64, g.Params.dimension)}
	for i := range sk.Value {
		switch g.Params.secretKeyDistribution {
		case SecretKeyTernary:
			v := g.ternary.Sample()
			sk.Value[i] = int64(int8(v))
		default:
			sk.Value[i] = int64(g.binary.Sample())
		}
	}
	return sk
}

func (p LWEParameters) modReduce(x int64) uint64 {
	m := int64(p.modulus)
	x %= m
	if x < 0 {
		x += m
	}
	return uint64(x)
}

// Encrypt draws a uniform a ∈ ℤ_q^n and Gaussian noise e, and returns the
// LWE encryption of m under sk (§4.3).
func (g *LWEKeyGenerator) Encrypt(m uint64, sk LWESecretKey) LWECiphertext {
	ct := LWECiphertext{Params: g.Params, A: make([]uint64, g.Params.dimension)}

	var dot int64
	for i := range ct.A {
		ct.A[i] = g.uniform.Sample() % g.Params.modulus
		dot += int64(ct.A[i]) * sk.Value[i]
	}

	noise := g.sampleNoise()
	b := int64(m%g.Params.modulus) + dot + noise
	ct.B = g.Params.modReduce(b)
	return ct
}

// sampleNoise draws Gaussian noise scaled to the integer modulus q, not the
// 2^64-wide torus the underlying GaussianSampler is calibrated for: it
// samples a centered fraction-of-torus value and rescales it onto [-q/2,
// q/2), since Params.stdDev is defined as a fraction of q (§4.3).
func (g *LWEKeyGenerator) sampleNoise() int64 {
	frac := int64(g.gaussian.Sample(g.Params.stdDev))
	return int64(math.Round(float64(frac) / math.Exp2(64) * float64(g.Params.modulus)))
}

// Decrypt returns (b - ⟨a,s⟩) mod q.
func Decrypt(ct LWECiphertext, sk LWESecretKey) uint64 {
	var dot int64
	for i := range ct.A {
		dot += int64(ct.A[i]) * sk.Value[i]
	}
	return ct.Params.modReduce(int64(ct.B) - dot)
}

// checkLWEParamsMatch panics with a parameter-mismatch error (§7) if ct0 and
// ct1 were not generated under the same parameters.
func checkLWEParamsMatch(ct0, ct1 LWECiphertext) {
	if ct0.Params != ct1.Params {
		panic(fmt.Sprintf("tfhe: LWE parameter mismatch: %+v vs %+v", ct0.Params, ct1.Params))
	}
}

// Add returns the coordinatewise sum of ct0 and ct1 mod q.
func Add(ct0, ct1 LWECiphertext) LWECiphertext {
	checkLWEParamsMatch(ct0, ct1)

	out := LWECiphertext{Params: ct0.Params, A: make([]uint64, len(ct0.A))}
	for i := range out.A {
		out.A[i] = ct0.Params.modReduce(int64(ct0.A[i]) + int64(ct1.A[i]))
	}
	out.B = ct0.Params.modReduce(int64(ct0.B) + int64(ct1.B))
	return out
}

// ScalarMul returns k * ct, coordinatewise mod q.
func ScalarMul(ct LWECiphertext, k int64) LWECiphertext {
	out := LWECiphertext{Params: ct.Params, A: make([]uint64, len(ct.A))}
	for i := range out.A {
		out.A[i] = ct.Params.modReduce(k * int64(ct.A[i]))
	}
	out.B = ct.Params.modReduce(k * int64(ct.B))
	return out
}
