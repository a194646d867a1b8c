package tfhe

// SecretKey bundles the two secret keys a gate-bootstrapping evaluator
// needs: the "small" flat key that gate ciphertexts are encrypted under,
// and the "large" ring key used internally by the blind-rotation
// accumulator (§9, design note on generic polynomial TLWE).
type SecretKey[T TorusInt] struct {
	// LWEKey is the small secret key, of dimension Params.LWEDimension().
	// User-facing ciphertexts (gate inputs and outputs) are encrypted
	// under this key.
	LWEKey TLWESecretKey[T]
	// GLWEKey is the large secret key, of rank Params.GLWERank() and
	// degree Params.PolyDegree(). The blind-rotation accumulator and the
	// bootstrapping key are built against this key.
	GLWEKey GLWESecretKey[T]
}

// BootstrappingKey is, for each coordinate of the small secret key, a GGSW
// encryption of that bit under the large secret key (§3, §4.6).
type BootstrappingKey[T TorusInt] struct {
	Value []GGSWSample[T]
}

// KeySwitchKey linearly translates an LWE-type ciphertext from one secret
// key (and dimension) to another: for each input coordinate and each
// decomposition level, a TLWE encryption (under the output key) of a scaled
// copy of that coordinate (§3).
type KeySwitchKey[T TorusInt] struct {
	// Value has length equal to the input dimension; Value[i] has length
	// Gadget.Level().
	Value  [][]TLWESample[T]
	Gadget GadgetParameters[T]
}

// EvaluationKey is the "cloud key" published alongside ciphertexts: a
// bootstrapping key and a key-switch key, which Bootstrap uses under either
// BootstrapOrder (§3: "Cloud keys ... derived from the secret key,
// published once, never mutated").
type EvaluationKey[T TorusInt] struct {
	BootstrapKey BootstrappingKey[T]
	KeySwitchKey KeySwitchKey[T]
}
