package tfhe_test

import (
	"math"
	"testing"

	"github.com/sp301415/tfhe-go/tfhe"
	"github.com/stretchr/testify/assert"
)

// trueGateMu is the gate layer's +1/8 encoding point for uint64 (§4.8);
// duplicated here from the unexported muEighth since this is a black-box
// test package.
const trueGateMu uint64 = uint64(1) << 61

// TestBootstrapResetsNoise exercises property 9 (§8): a ciphertext whose
// noise has grown to 80% of the decision margin still decrypts correctly,
// and bootstrapping it brings the noise back down to within 20% of the
// margin.
func TestBootstrapResetsNoise(t *testing.T) {
	enc, ev := newGateFixture(t)

	margin := math.Exp2(64 - 3) // distance from the +1/8 point to the decision boundary at 0
	degraded := enc.EncryptBool(true)
	degraded.B += uint64(0.8 * margin)

	// Still within the correct decoding region.
	assert.True(t, enc.DecryptBool(degraded))

	// AND with a trivially-true ciphertext is a no-op on the encoded value
	// but forces a fresh bootstrap, resetting accumulated noise.
	trivialTrue := tfhe.TrivialTLWE[uint64](trueGateMu, len(degraded.A))
	refreshed := ev.AND(degraded, trivialTrue)

	assert.True(t, enc.DecryptBool(refreshed))

	refreshedPhase := tfhe.Phase(refreshed, enc.SecretKey.LWEKey)
	refreshedDistance := math.Abs(float64(int64(refreshedPhase) - int64(trueGateMu)))
	assert.Less(t, refreshedDistance, 0.2*margin)
}

func TestModSwitchRoundsToNearest(t *testing.T) {
	// N=32 => logPolyDegree=5, domain ℤ/64.
	got := tfhe.ModSwitch[uint64](0, 5)
	assert.Equal(t, 0, got)

	half := uint64(1) << 63
	got = tfhe.ModSwitch[uint64](half, 5)
	assert.Equal(t, 32, got)
}
