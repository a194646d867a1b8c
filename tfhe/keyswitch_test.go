package tfhe_test

import (
	"testing"

	"github.com/sp301415/tfhe-go/tfhe"
	"github.com/stretchr/testify/assert"
)

// TestKeySwitchPreservesPhase exercises the key-switch key directly (§3):
// translating a ciphertext from the flattened large key down to the small
// key must preserve its phase up to noise.
func TestKeySwitchPreservesPhase(t *testing.T) {
	params := testGateParams

	glweEnc := tfhe.NewGLWEEncryptor[uint64](params)
	tlweEnc := tfhe.NewTLWEEncryptor[uint64](params)

	sk := tfhe.SecretKey[uint64]{
		LWEKey:  tlweEnc.GenSecretKey(),
		GLWEKey: glweEnc.GenSecretKey(),
	}

	ksk := tfhe.GenKeySwitchKey(sk, params)

	largeKey := tfhe.FlattenSecretKey(sk.GLWEKey)
	largeEnc := tfhe.NewTLWEEncryptor[uint64](params)
	// largeEnc.Encrypt only needs len(sk.Value) to size the mask; reuse the
	// flattened key directly as the encryption key.
	ctLarge := largeEnc.Encrypt(toTorus(0.3), largeKey)

	ctSmall := tfhe.NewTLWESample[uint64](params.LWEDimension())
	tfhe.KeySwitchAssign(ksk, ctLarge, params.LWEDimension(), ctSmall)

	got := fromTorus(tfhe.Phase(ctSmall, sk.LWEKey))
	assert.InDelta(t, 0.3, got, 0.05)
}

func TestGenKeySwitchKeyParallelMatchesDimensions(t *testing.T) {
	params := testGateParams

	glweEnc := tfhe.NewGLWEEncryptor[uint64](params)
	tlweEnc := tfhe.NewTLWEEncryptor[uint64](params)

	sk := tfhe.SecretKey[uint64]{
		LWEKey:  tlweEnc.GenSecretKey(),
		GLWEKey: glweEnc.GenSecretKey(),
	}

	ksk := tfhe.GenKeySwitchKeyParallel(sk, params)
	largeKey := tfhe.FlattenSecretKey(sk.GLWEKey)

	assert.Equal(t, len(largeKey.Value), len(ksk.Value))
	for _, row := range ksk.Value {
		assert.Equal(t, params.KeySwitchParameters().Level(), len(row))
	}
}
