package tfhe_test

import (
	"testing"

	"github.com/sp301415/tfhe-go/tfhe"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParameterSetsCompile(t *testing.T) {
	assert.NotPanics(t, func() { tfhe.ParamsBoolean.Compile() })
	assert.NotPanics(t, func() { tfhe.ParamsBooleanReduced.Compile() })
	assert.NotPanics(t, func() { tfhe.ParamsBooleanTernary.Compile() })
}

func TestFailureProbabilityIsNegativeLog2(t *testing.T) {
	params := tfhe.ParamsBoolean.Compile()
	// A well-chosen parameter set should have a failure probability well
	// below 2^-20 in log2 scale (a large negative number).
	assert.Less(t, params.FailureProbability(), -20.0)
}

func TestReducedParamsHaveWorseMarginThanFull(t *testing.T) {
	full := tfhe.ParamsBoolean.Compile()
	reduced := tfhe.ParamsBooleanReduced.Compile()

	// The reduced parameter set trades security margin for speed; its
	// estimated failure probability should never be better than the full
	// set's.
	assert.GreaterOrEqual(t, reduced.FailureProbability(), full.FailureProbability())
}

func TestInvalidGadgetParametersPanic(t *testing.T) {
	assert.Panics(t, func() {
		tfhe.GadgetParametersLiteral[uint64]{BaseLog: 0, Level: 3}.Compile()
	})
	assert.Panics(t, func() {
		tfhe.GadgetParametersLiteral[uint64]{BaseLog: 10, Level: 0}.Compile()
	})
}

func TestInvalidTLWEParametersPanic(t *testing.T) {
	base := tfhe.TLWEParametersLiteral[uint64]{
		LWEDimension: 10,
		GLWERank:     1,
		PolyDegree:   16,

		LWEStdDev:  1e-9,
		GLWEStdDev: 1e-9,

		BlockSize:      1,
		MessageModulus: 2,

		BlindRotateParameters: tfhe.GadgetParametersLiteral[uint64]{BaseLog: 4, Level: 3},
		KeySwitchParameters:   tfhe.GadgetParametersLiteral[uint64]{BaseLog: 2, Level: 4},
	}

	notPowerOfTwo := base
	notPowerOfTwo.PolyDegree = 17
	assert.Panics(t, func() { notPowerOfTwo.Compile() })

	badBlock := base
	badBlock.BlockSize = 3
	assert.Panics(t, func() { badBlock.Compile() })

	zeroStdDev := base
	zeroStdDev.LWEStdDev = 0
	assert.Panics(t, func() { zeroStdDev.Compile() })
}
