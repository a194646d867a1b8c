package num_test

import (
	"testing"

	"github.com/sp301415/tfhe-go/math/num"
	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		x    int
		want bool
	}{
		{0, false}, {1, true}, {2, true}, {3, false}, {1024, true}, {1023, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, num.IsPowerOfTwo(tc.x))
	}
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, num.Log2(1))
	assert.Equal(t, 10, num.Log2(1024))
	assert.Equal(t, 5, num.Log2(32))
}

func TestSizeT(t *testing.T) {
	assert.Equal(t, 32, num.SizeT[uint32]())
	assert.Equal(t, 64, num.SizeT[uint64]())
}

func TestDivRound(t *testing.T) {
	assert.Equal(t, uint64(3), num.DivRound(uint64(10), uint64(3)))
	assert.Equal(t, uint64(2), num.DivRound(uint64(7), uint64(3)))
	assert.Equal(t, uint64(0), num.DivRound(uint64(0), uint64(4)))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, num.Min(3, 7))
	assert.Equal(t, 7, num.Max(3, 7))
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, 0, num.Sqrt(0))
	assert.Equal(t, 3, num.Sqrt(9))
	assert.Equal(t, 3, num.Sqrt(15))
	assert.Equal(t, 4, num.Sqrt(16))
}
