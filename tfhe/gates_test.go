package tfhe_test

import (
	"testing"

	"github.com/sp301415/tfhe-go/tfhe"
	"github.com/stretchr/testify/assert"
)

// testGateParams is a toy parameter set, sized for test speed rather than
// security, used to exercise the full gate layer (§4.8) and scenario S5's
// truth-table check.
var testGateParams = tfhe.TLWEParametersLiteral[uint64]{
	LWEDimension: 8,
	GLWERank:     1,
	PolyDegree:   32,

	LWEStdDev:  1e-9,
	GLWEStdDev: 1e-9,

	LWESecretKeyDistribution:  tfhe.SecretKeyBinary,
	GLWESecretKeyDistribution: tfhe.SecretKeyBinary,

	BlockSize:      1,
	MessageModulus: 2,

	BlindRotateParameters: tfhe.GadgetParametersLiteral[uint64]{BaseLog: 6, Level: 3},
	KeySwitchParameters:   tfhe.GadgetParametersLiteral[uint64]{BaseLog: 2, Level: 6},
}.Compile()

func newGateFixture(t *testing.T) (*tfhe.Encryptor[uint64], *tfhe.Evaluator[uint64]) {
	t.Helper()
	enc := tfhe.NewEncryptor[uint64](testGateParams)
	evk := enc.GenEvaluationKey()
	ev := tfhe.NewEvaluator[uint64](testGateParams, evk)
	return enc, ev
}

// TestGateTruthTables exercises property 8 (§8): each of the four
// bootstrapped two-input gates (NAND, AND, OR, XOR) must match its truth
// table exactly once bootstrapped and decrypted. NOT and MUX are covered by
// TestNotIsFree and TestMux.
func TestGateTruthTables(t *testing.T) {
	enc, ev := newGateFixture(t)

	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			ca := enc.EncryptBool(a)
			cb := enc.EncryptBool(b)

			t.Run("NAND", func(t *testing.T) {
				got := enc.DecryptBool(ev.NAND(ca, cb))
				assert.Equal(t, !(a && b), got)
			})
			t.Run("AND", func(t *testing.T) {
				got := enc.DecryptBool(ev.AND(ca, cb))
				assert.Equal(t, a && b, got)
			})
			t.Run("OR", func(t *testing.T) {
				got := enc.DecryptBool(ev.OR(ca, cb))
				assert.Equal(t, a || b, got)
			})
			t.Run("XOR", func(t *testing.T) {
				got := enc.DecryptBool(ev.XOR(ca, cb))
				assert.Equal(t, a != b, got)
			})
		}
	}
}

func TestNotIsFree(t *testing.T) {
	enc, _ := newGateFixture(t)

	for _, a := range []bool{false, true} {
		ca := enc.EncryptBool(a)
		got := enc.DecryptBool(tfhe.NOT(ca))
		assert.Equal(t, !a, got)
	}
}

func TestMux(t *testing.T) {
	enc, ev := newGateFixture(t)

	for _, s := range []bool{false, true} {
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				cs := enc.EncryptBool(s)
				ca := enc.EncryptBool(a)
				cb := enc.EncryptBool(b)

				want := b
				if s {
					want = a
				}

				got := enc.DecryptBool(ev.MUX(cs, ca, cb))
				assert.Equal(t, want, got)
			}
		}
	}
}

// TestNANDScenarioS5 is scenario S5 (§8): under a reduced parameter set, the
// NAND truth table must hold for every input combination.
func TestNANDScenarioS5(t *testing.T) {
	enc, ev := newGateFixture(t)

	table := []struct{ a, b, want bool }{
		{false, false, true},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}

	for _, tc := range table {
		ca := enc.EncryptBool(tc.a)
		cb := enc.EncryptBool(tc.b)
		got := enc.DecryptBool(ev.NAND(ca, cb))
		assert.Equal(t, tc.want, got)
	}
}
