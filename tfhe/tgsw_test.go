package tfhe_test

import (
	"testing"

	"github.com/sp301415/tfhe-go/tfhe"
	"github.com/stretchr/testify/assert"
)

func newTGSWParams() tfhe.TGSWParameters[uint64] {
	lit := tfhe.TGSWParametersLiteral[uint64]{
		TLWE: tfhe.TLWEParametersLiteral[uint64]{
			LWEDimension: 10,
			GLWERank:     1,
			PolyDegree:   16,

			LWEStdDev:  1e-9,
			GLWEStdDev: 1e-9,

			LWESecretKeyDistribution:  tfhe.SecretKeyBinary,
			GLWESecretKeyDistribution: tfhe.SecretKeyBinary,

			BlockSize:      1,
			MessageModulus: 2,

			BlindRotateParameters: tfhe.GadgetParametersLiteral[uint64]{BaseLog: 8, Level: 2},
			KeySwitchParameters:   tfhe.GadgetParametersLiteral[uint64]{BaseLog: 2, Level: 4},
		},
		Gadget: tfhe.GadgetParametersLiteral[uint64]{BaseLog: 8, Level: 2},
	}
	return lit.Compile()
}

// TestCMux exercises scenario S4 (§8): ℓ=2, Bg_bits=8; CMux between an
// encryption of 0.1 and an encryption of 0.7. A selector encrypting 1
// should yield a phase within 0.01 of 0.7; a selector encrypting 0 should
// yield a phase within 0.01 of 0.1.
func TestCMux(t *testing.T) {
	params := newTGSWParams()
	tlweEnc := tfhe.NewTLWEEncryptor[uint64](params.TLWE)
	tgswEnc := tfhe.NewTGSWEncryptor[uint64](params)
	sk := tlweEnc.GenSecretKey()
	dec := tfhe.NewDecomposer[uint64](params.Gadget)

	c0 := tlweEnc.Encrypt(toTorus(0.1), sk)
	c1 := tlweEnc.Encrypt(toTorus(0.7), sk)

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
			sel := tgswEnc.Encrypt(tc.selector, sk)
			out := tfhe.NewTLWESample[uint64](params.TLWE.LWEDimension())
			tfhe.CMuxAssign(dec, sel, c0, c1, out)

			got := fromTorus(tfhe.Phase(out, sk))
			assert.InDelta(t, tc.want, got, 0.01)
		})
	}
}

func TestExternalProductOfZeroSelectorIsZero(t *testing.T) {
	params := newTGSWParams()
	tlweEnc := tfhe.NewTLWEEncryptor[uint64](params.TLWE)
	tgswEnc := tfhe.NewTGSWEncryptor[uint64](params)
	sk := tlweEnc.GenSecretKey()
	dec := tfhe.NewDecomposer[uint64](params.Gadget)

	ct := tlweEnc.Encrypt(toTorus(0.25), sk)
	zeroSel := tgswEnc.Encrypt(0, sk)

	out := tfhe.NewTLWESample[uint64](params.TLWE.LWEDimension())
	tfhe.ExternalProductAssign(dec, zeroSel, ct, out)

	got := fromTorus(tfhe.Phase(out, sk))
	assert.InDelta(t, 0.0, got, 0.01)
}
