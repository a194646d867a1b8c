package vec_test

import (
	"testing"

	"github.com/sp301415/tfhe-go/math/vec"
	"github.com/stretchr/testify/assert"
)

func TestAddSubNeg(t *testing.T) {
	v0 := []uint64{1, 2, 3}
	v1 := []uint64{10, 20, 30}

	assert.Equal(t, []uint64{11, 22, 33}, vec.Add(v0, v1))
	assert.Equal(t, []uint64{9, 18, 27}, vec.Sub(v1, v0))
	assert.Equal(t, []uint64{uint64(0) - 1, uint64(0) - 2, uint64(0) - 3}, vec.Neg(v0))
}

func TestScalarMulVariants(t *testing.T) {
	v := []uint64{1, 2, 3}

	out := make([]uint64, 3)
	vec.ScalarMulAssign(v, 2, out)
	assert.Equal(t, []uint64{2, 4, 6}, out)

	vec.ScalarMulAddAssign(v, 1, out)
	assert.Equal(t, []uint64{3, 6, 9}, out)

	vec.ScalarMulSubAssign(v, 1, out)
	assert.Equal(t, []uint64{2, 4, 6}, out)
}

func TestDot(t *testing.T) {
	v0 := []uint64{1, 2, 3}
	v1 := []uint64{4, 5, 6}
	assert.Equal(t, uint64(1*4+2*5+3*6), vec.Dot(v0, v1))
}

func TestReverseAssign(t *testing.T) {
	v0 := []int{1, 2, 3, 4}
	out := make([]int, 4)
	vec.ReverseAssign(v0, out)
	assert.Equal(t, []int{4, 3, 2, 1}, out)
}

func TestRotateInPlace(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	vec.RotateInPlace(v, 2)
	assert.Equal(t, []int{4, 5, 1, 2, 3}, v)

	v = []int{1, 2, 3, 4, 5}
	vec.RotateInPlace(v, -1)
	assert.Equal(t, []int{2, 3, 4, 5, 1}, v)
}

func TestFillAndCopyAssign(t *testing.T) {
	v := make([]int, 4)
	vec.Fill(v, 7)
	assert.Equal(t, []int{7, 7, 7, 7}, v)

	out := make([]int, 4)
	vec.CopyAssign(v, out)
	assert.Equal(t, v, out)
}
