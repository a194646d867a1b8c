package tfhe_test

import (
	"testing"

	"github.com/sp301415/tfhe-go/math/poly"
	"github.com/sp301415/tfhe-go/tfhe"
	"github.com/stretchr/testify/assert"
)

// TestCMuxGGSW mirrors TestCMux (S4) over the ring-valued GGSW/GLWE variant
// used by blind rotation, confirming both ciphertext families share the
// same CMux semantics (§9, design note option (a)).
func TestCMuxGGSW(t *testing.T) {
	params := testGateParams
	glweEnc := tfhe.NewGLWEEncryptor[uint64](params)
	ggswEnc := tfhe.NewGGSWEncryptor[uint64](params, params.BlindRotateParameters())
	sk := glweEnc.GenSecretKey()
	dec := tfhe.NewDecomposer[uint64](params.BlindRotateParameters())
	pe := poly.NewEvaluator[uint64](params.PolyDegree())

	m0 := glweEnc.PolyEvaluator.NewPoly()
	m0.Coeffs[0] = toTorus(0.1)
	m1 := glweEnc.PolyEvaluator.NewPoly()
	m1.Coeffs[0] = toTorus(0.7)

	c0 := glweEnc.Encrypt(m0, sk)
	c1 := glweEnc.Encrypt(m1, sk)

	cases := []struct {
		name     string
		selector int64
		want     float64
	}{
		{"select zero", 0, 0.1},
		{"select one", 1, 0.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := ggswEnc.Encrypt(tc.selector, sk)
			out := tfhe.NewGLWESample[uint64](params.GLWERank(), params.PolyDegree())
			tfhe.CMuxGGSWAssign(pe, dec, sel, c0, c1, out)

			got := glweEnc.Phase(out, sk)
			assert.InDelta(t, tc.want, fromTorus(got.Coeffs[0]), 0.01)
		})
	}
}

func TestExternalProductGGSWOfZeroSelectorIsZero(t *testing.T) {
	params := testGateParams
	glweEnc := tfhe.NewGLWEEncryptor[uint64](params)
	ggswEnc := tfhe.NewGGSWEncryptor[uint64](params, params.BlindRotateParameters())
	sk := glweEnc.GenSecretKey()
	dec := tfhe.NewDecomposer[uint64](params.BlindRotateParameters())
	pe := poly.NewEvaluator[uint64](params.PolyDegree())

	m := glweEnc.PolyEvaluator.NewPoly()
	m.Coeffs[0] = toTorus(0.4)
	ct := glweEnc.Encrypt(m, sk)

	zeroSel := ggswEnc.Encrypt(0, sk)
	out := tfhe.NewGLWESample[uint64](params.GLWERank(), params.PolyDegree())
	tfhe.ExternalProductGGSWAssign(pe, dec, zeroSel, ct, out)

	got := glweEnc.Phase(out, sk)
	assert.InDelta(t, 0.0, fromTorus(got.Coeffs[0]), 0.01)
}
