package tfhe

// ParamsBoolean is the recommended default parameter set for the Boolean
// gate layer (§6): LWEDimension n=630 for gate ciphertexts, a rank-1,
// degree-1024 GLWE accumulator for blind rotation, ℓ=3 levels at
// Bg_bits=10 for the bootstrapping key: the n, N, ℓ and Bg_bits of §4.7's
// worked example. The noise standard deviations are 6.10e-6 for gate
// ciphertexts and 3.73e-9 for the GLWE/GGSW layer.
var ParamsBoolean = TLWEParametersLiteral[uint64]{
	LWEDimension: 630,
	GLWERank:     1,
	PolyDegree:   1024,

	LWEStdDev:  6.10e-6,
	GLWEStdDev: 3.73e-9,

	LWESecretKeyDistribution:  SecretKeyBinary,
	GLWESecretKeyDistribution: SecretKeyBinary,

	BlockSize: 1,

	MessageModulus: 2,

	BlindRotateParameters: GadgetParametersLiteral[uint64]{BaseLog: 10, Level: 3},
	KeySwitchParameters:   GadgetParametersLiteral[uint64]{BaseLog: 2, Level: 8},

	BootstrapOrder: OrderBlindRotateKeySwitch,
}

// ParamsBooleanReduced is a smaller parameter set (§8, scenario S5: "a
// reduced 500") intended for quick tests and examples rather than
// deployment security.
var ParamsBooleanReduced = TLWEParametersLiteral[uint64]{
	LWEDimension: 500,
	GLWERank:     1,
	PolyDegree:   512,

	LWEStdDev:  3.05e-5,
	GLWEStdDev: 2.98e-8,

	LWESecretKeyDistribution:  SecretKeyBinary,
	GLWESecretKeyDistribution: SecretKeyBinary,

	BlockSize: 1,

	MessageModulus: 2,

	BlindRotateParameters: GadgetParametersLiteral[uint64]{BaseLog: 9, Level: 3},
	KeySwitchParameters:   GadgetParametersLiteral[uint64]{BaseLog: 2, Level: 7},

	BootstrapOrder: OrderBlindRotateKeySwitch,
}

// ParamsBooleanTernary mirrors ParamsBoolean but draws both secret keys from
// the ternary distribution (Supplemented Features, DESIGN.md item 1).
var ParamsBooleanTernary = TLWEParametersLiteral[uint64]{
	LWEDimension: 630,
	GLWERank:     1,
	PolyDegree:   1024,

	LWEStdDev:  6.10e-6,
	GLWEStdDev: 3.73e-9,

	LWESecretKeyDistribution:  SecretKeyTernary,
	GLWESecretKeyDistribution: SecretKeyTernary,

	BlockSize: 1,

	MessageModulus: 2,

	BlindRotateParameters: GadgetParametersLiteral[uint64]{BaseLog: 10, Level: 3},
	KeySwitchParameters:   GadgetParametersLiteral[uint64]{BaseLog: 2, Level: 8},

	BootstrapOrder: OrderBlindRotateKeySwitch,
}
