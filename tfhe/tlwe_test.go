package tfhe_test

import (
	"math"
	"testing"

	"github.com/sp301415/tfhe-go/tfhe"
	"github.com/stretchr/testify/assert"
)

// toTorus converts a fractional value in [0, 1) to its fixed-point uint64
// torus representation.
func toTorus(f float64) uint64 {
	return uint64(math.Round(f * math.Exp2(64)))
}

// fromTorus converts a uint64 torus value back to its fractional
// representative in [0, 1).
func fromTorus(x uint64) float64 {
	return float64(x) / math.Exp2(64)
}

func newTLWEEncryptor(t *testing.T) (*tfhe.TLWEEncryptor[uint64], tfhe.TLWESecretKey[uint64]) {
	t.Helper()
	lit := tfhe.TLWEParametersLiteral[uint64]{
		LWEDimension: 10,
		GLWERank:     1,
		PolyDegree:   16,

		LWEStdDev:  1e-9,
		GLWEStdDev: 1e-9,

		LWESecretKeyDistribution:  tfhe.SecretKeyBinary,
		GLWESecretKeyDistribution: tfhe.SecretKeyBinary,

		BlockSize:      1,
		MessageModulus: 2,

		BlindRotateParameters: tfhe.GadgetParametersLiteral[uint64]{BaseLog: 4, Level: 3},
		KeySwitchParameters:   tfhe.GadgetParametersLiteral[uint64]{BaseLog: 2, Level: 4},
	}
	params := lit.Compile()
	enc := tfhe.NewTLWEEncryptor[uint64](params)
	sk := enc.GenSecretKey()
	return enc, sk
}

// TestTLWEAdditivity exercises scenario S2 (§8): n=10, σ=10^-9; encrypt
// 0.1 and 0.2; the phase of their sum should land within 10^-6 of 0.3.
func TestTLWEAdditivity(t *testing.T) {
	enc, sk := newTLWEEncryptor(t)

	ct1 := enc.Encrypt(toTorus(0.1), sk)
	ct2 := enc.Encrypt(toTorus(0.2), sk)
	sum := tfhe.AddTLWE(ct1, ct2)

	got := fromTorus(tfhe.Phase(sum, sk))
	assert.InDelta(t, 0.3, got, 1e-6)
}

// TestTLWEScalarMul exercises scenario S3 (§8): scalar-multiply an
// encryption of 0.1 by 3; the phase should land within 10^-6 of 0.3.
func TestTLWEScalarMul(t *testing.T) {
	enc, sk := newTLWEEncryptor(t)

	ct := enc.Encrypt(toTorus(0.1), sk)
	tripled := tfhe.ScalarMulTLWE(ct, 3)

	got := fromTorus(tfhe.Phase(tripled, sk))
	assert.InDelta(t, 0.3, got, 1e-6)
}

func TestTLWESubAndNeg(t *testing.T) {
	enc, sk := newTLWEEncryptor(t)

	ct1 := enc.Encrypt(toTorus(0.4), sk)
	ct2 := enc.Encrypt(toTorus(0.15), sk)

	diff := tfhe.SubTLWE(ct1, ct2)
	got := fromTorus(tfhe.Phase(diff, sk))
	assert.InDelta(t, 0.25, got, 1e-6)

	neg := tfhe.NegTLWE(ct1)
	gotNeg := fromTorus(tfhe.Phase(neg, sk))
	assert.InDelta(t, 0.6, gotNeg, 1e-6)
}

func TestTrivialTLWEHasZeroMask(t *testing.T) {
	ct := tfhe.TrivialTLWE[uint64](toTorus(0.3), 10)
	for _, a := range ct.A {
		assert.Equal(t, uint64(0), a)
	}
	assert.Equal(t, toTorus(0.3), ct.B)
}

func TestTLWEDecryptBool(t *testing.T) {
	enc, sk := newTLWEEncryptor(t)

	trueCt := enc.Encrypt(toTorus(0.5), sk)
	falseCt := enc.Encrypt(toTorus(0.0), sk)

	assert.True(t, tfhe.DecryptBool(trueCt, sk))
	assert.False(t, tfhe.DecryptBool(falseCt, sk))
}
