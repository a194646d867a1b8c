package tfhe

import (
	"math"

	"github.com/sp301415/tfhe-go/math/num"
)

// TorusInt is the integer type used to represent a fixed-point value on the
// real torus 𝕋 = ℝ/ℤ: a value x of type T stands for x / 2^(bit width of T).
type TorusInt interface {
	uint32 | uint64
}

// SecretKeyDistribution controls how secret key coefficients are sampled.
//
// The distilled specification's data model allows either convention (§3);
// the original source exposes both generate_binary and generate_ternary.
// Both are supplemented here as a first-class parameter instead of a
// hard-coded binary-only key.
type SecretKeyDistribution int

const (
	// SecretKeyBinary samples coefficients uniformly from {0, 1}.
	SecretKeyBinary SecretKeyDistribution = iota
	// SecretKeyTernary samples coefficients uniformly from {-1, 0, 1}.
	SecretKeyTernary
)

// BootstrapOrder determines whether a gate bootstrap key-switches before or
// after blind rotation.
type BootstrapOrder int

const (
	// OrderBlindRotateKeySwitch blind-rotates first, extracts a sample in
	// the (large) GLWE-derived dimension, and key-switches down to the
	// gate-layer's LWE dimension. This is the default: it keeps the
	// key-switch key load-bearing (see DESIGN.md, Open Question).
	OrderBlindRotateKeySwitch BootstrapOrder = iota
	// OrderKeySwitchBlindRotate key-switches the input ciphertext down to
	// the blind-rotation dimension first, then blind-rotates.
	OrderKeySwitchBlindRotate
)

// GadgetParametersLiteral is a user-facing, uncompiled gadget decomposition
// parameter set: base B_g = 2^BaseLog and Level decomposition levels.
type GadgetParametersLiteral[T TorusInt] struct {
	BaseLog int
	Level   int
}

// GadgetParameters is the compiled, validated form of
// GadgetParametersLiteral.
type GadgetParameters[T TorusInt] struct {
	baseLog int
	level   int
	sizeT   int
}

// Compile validates p and derives internal fields, panicking if p is
// invalid.
func (p GadgetParametersLiteral[T]) Compile() GadgetParameters[T] {
	switch {
	case p.BaseLog <= 0:
		panic("tfhe: GadgetParametersLiteral BaseLog must be positive")
	case p.Level <= 0:
		panic("tfhe: GadgetParametersLiteral Level must be positive")
	case num.SizeT[T]() < p.BaseLog*p.Level:
		panic("tfhe: GadgetParametersLiteral BaseLog * Level exceeds torus width")
	}

	return GadgetParameters[T]{
		baseLog: p.BaseLog,
		level:   p.Level,
		sizeT:   num.SizeT[T](),
	}
}

// BaseLog returns log2(B_g).
func (p GadgetParameters[T]) BaseLog() int { return p.baseLog }

// Base returns B_g = 2^BaseLog.
func (p GadgetParameters[T]) Base() T { return T(1) << p.baseLog }

// Level returns the number of gadget decomposition levels ℓ.
func (p GadgetParameters[T]) Level() int { return p.level }

// LogLastScale returns log2 of the scale of the last (finest) gadget level,
// B_g^{-ℓ}, i.e. the bit position of the lowest-order digit.
func (p GadgetParameters[T]) LogLastScale() int {
	return p.sizeT - p.baseLog*p.level
}

// TLWEParametersLiteral is the user-facing TLWE parameter set (§3, §6).
type TLWEParametersLiteral[T TorusInt] struct {
	// LWEDimension is the flat TLWE dimension n.
	LWEDimension int
	// GLWERank is the GLWE rank k used by the ring variant (the blind
	// rotation accumulator). k=1 matches the spec's default presentation.
	GLWERank int
	// PolyDegree is the ring degree N of the GLWE/GGSW polynomial variant.
	PolyDegree int

	LWEStdDev  float64
	GLWEStdDev float64

	LWESecretKeyDistribution  SecretKeyDistribution
	GLWESecretKeyDistribution SecretKeyDistribution

	BlockSize int

	MessageModulus uint64

	BlindRotateParameters GadgetParametersLiteral[T]
	KeySwitchParameters   GadgetParametersLiteral[T]

	BootstrapOrder BootstrapOrder
}

// TLWEParameters is the compiled, read-only form of TLWEParametersLiteral.
type TLWEParameters[T TorusInt] struct {
	lweDimension  int
	glweRank      int
	glweDimension int
	polyDegree    int
	logPolyDegree int

	lweStdDev  float64
	glweStdDev float64

	lweSecretKeyDistribution  SecretKeyDistribution
	glweSecretKeyDistribution SecretKeyDistribution

	blockSize int

	messageModulus uint64
	logQ           int
	floatQ         float64
	scale          T

	blindRotateParameters GadgetParameters[T]
	keySwitchParameters   GadgetParameters[T]

	bootstrapOrder BootstrapOrder
}

// Compile validates p and derives its internal fields. Panics on invalid
// parameters per §7 ("Invalid parameters" is a fatal, construction-time
// error).
func (p TLWEParametersLiteral[T]) Compile() TLWEParameters[T] {
	switch {
	case p.LWEDimension <= 0:
		panic("tfhe: LWEDimension must be positive")
	case p.GLWERank <= 0:
		panic("tfhe: GLWERank must be positive")
	case !num.IsPowerOfTwo(p.PolyDegree):
		panic("tfhe: PolyDegree must be a power of two")
	case p.LWEStdDev <= 0 || p.GLWEStdDev <= 0:
		panic("tfhe: standard deviations must be positive")
	case !num.IsPowerOfTwo(p.MessageModulus):
		panic("tfhe: MessageModulus must be a power of two")
	case p.BlockSize <= 0:
		panic("tfhe: BlockSize must be positive")
	case p.LWEDimension%p.BlockSize != 0:
		panic("tfhe: LWEDimension must be a multiple of BlockSize")
	}

	logQ := num.SizeT[T]()

	return TLWEParameters[T]{
		lweDimension:  p.LWEDimension,
		glweRank:      p.GLWERank,
		glweDimension: p.GLWERank * p.PolyDegree,
		polyDegree:    p.PolyDegree,
		logPolyDegree: num.Log2(p.PolyDegree),

		lweStdDev:  p.LWEStdDev,
		glweStdDev: p.GLWEStdDev,

		lweSecretKeyDistribution:  p.LWESecretKeyDistribution,
		glweSecretKeyDistribution: p.GLWESecretKeyDistribution,

		blockSize: p.BlockSize,

		messageModulus: p.MessageModulus,
		logQ:           logQ,
		floatQ:         math.Exp2(float64(logQ)),
		scale:          T(num.DivRound(uint64(1)<<(logQ-1), p.MessageModulus)) * 2,

		blindRotateParameters: p.BlindRotateParameters.Compile(),
		keySwitchParameters:   p.KeySwitchParameters.Compile(),

		bootstrapOrder: p.BootstrapOrder,
	}
}

// LWEDimension returns the flat ciphertext dimension n.
func (p TLWEParameters[T]) LWEDimension() int { return p.lweDimension }

// GLWERank returns the GLWE rank k.
func (p TLWEParameters[T]) GLWERank() int { return p.glweRank }

// GLWEDimension returns k*N, the flattened dimension of a GLWE mask.
func (p TLWEParameters[T]) GLWEDimension() int { return p.glweDimension }

// PolyDegree returns the ring degree N.
func (p TLWEParameters[T]) PolyDegree() int { return p.polyDegree }

// LogPolyDegree returns log2(N).
func (p TLWEParameters[T]) LogPolyDegree() int { return p.logPolyDegree }

// LWEStdDev returns the flat-ciphertext noise standard deviation, as a
// fraction of the torus.
func (p TLWEParameters[T]) LWEStdDev() float64 { return p.lweStdDev }

// GLWEStdDev returns the ring-ciphertext noise standard deviation.
func (p TLWEParameters[T]) GLWEStdDev() float64 { return p.glweStdDev }

// LWESecretKeyDistribution returns the flat secret key's sampling
// distribution.
func (p TLWEParameters[T]) LWESecretKeyDistribution() SecretKeyDistribution {
	return p.lweSecretKeyDistribution
}

// GLWESecretKeyDistribution returns the ring secret key's sampling
// distribution.
func (p TLWEParameters[T]) GLWESecretKeyDistribution() SecretKeyDistribution {
	return p.glweSecretKeyDistribution
}

// BlockSize returns the configured secret key block width. Compile checks
// that LWEDimension is a multiple of it; blind rotation does not use it.
func (p TLWEParameters[T]) BlockSize() int { return p.blockSize }

// MessageModulus returns the plaintext modulus t.
func (p TLWEParameters[T]) MessageModulus() uint64 { return p.messageModulus }

// LogQ returns log2(q), the torus representation width.
func (p TLWEParameters[T]) LogQ() int { return p.logQ }

// Scale returns Δ = q/t, the encoding scale factor for plain LWE messages.
func (p TLWEParameters[T]) Scale() T { return p.scale }

// BlindRotateParameters returns the bootstrapping key's gadget parameters.
func (p TLWEParameters[T]) BlindRotateParameters() GadgetParameters[T] {
	return p.blindRotateParameters
}

// KeySwitchParameters returns the key-switch key's gadget parameters.
func (p TLWEParameters[T]) KeySwitchParameters() GadgetParameters[T] {
	return p.keySwitchParameters
}

// BootstrapOrder returns whether gate bootstraps key-switch before or after
// blind rotation.
func (p TLWEParameters[T]) BootstrapOrder() BootstrapOrder { return p.bootstrapOrder }

// FailureProbability estimates, in log2 scale, the probability that a fresh
// gate-bootstrap output decrypts incorrectly, modeling accumulated noise as
// Gaussian and comparing against the quarter-torus decision margin (§7: "the
// implementer is expected to expose a deterministic noise-budget estimator
// as an optional diagnostic").
//
// This is a simplified form of the teacher's EstimateFailureProbability*
// family, with the FDFB/EBS-specific terms removed.
func (p TLWEParameters[T]) FailureProbability() float64 {
	bootstrapVar := float64(p.lweDimension) * p.blindRotateVariance()
	keySwitchVar := float64(p.glweDimension) * p.keySwitchVariance()

	totalStdDev := math.Sqrt(bootstrapVar + keySwitchVar)
	margin := 0.25

	return 2 * gaussianTailLog2(margin/totalStdDev)
}

func (p TLWEParameters[T]) blindRotateVariance() float64 {
	level := p.blindRotateParameters.Level()
	baseLog := p.blindRotateParameters.BaseLog()
	logLastScale := p.blindRotateParameters.LogLastScale()

	decompVar := (p.glweStdDev * p.glweStdDev) * float64(level) * math.Exp2(2*float64(baseLog))
	roundVar := math.Exp2(2*float64(logLastScale-p.logQ)) / 12
	return decompVar + roundVar
}

func (p TLWEParameters[T]) keySwitchVariance() float64 {
	level := p.keySwitchParameters.Level()
	baseLog := p.keySwitchParameters.BaseLog()
	logLastScale := p.keySwitchParameters.LogLastScale()

	decompVar := (p.lweStdDev * p.lweStdDev) * float64(level) * math.Exp2(2*float64(baseLog))
	roundVar := math.Exp2(2*float64(logLastScale-p.logQ)) / 12
	return decompVar + roundVar
}

// gaussianTailLog2 returns log2(P(Z > x)) for a standard normal Z, using the
// classical Q-function tail bound Q(x) <= exp(-x^2/2).
func gaussianTailLog2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -x * x / (2 * math.Ln2)
}
