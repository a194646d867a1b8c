package tfhe

// Encryptor is the client-side half of the gate-bootstrapping pipeline: it
// holds the secret key and can encrypt, decrypt, and derive the public
// EvaluationKey. It is never handed to the untrusted evaluator (§3:
// "Secret keys are created once, kept client-side, never leave").
type Encryptor[T TorusInt] struct {
	Params TLWEParameters[T]

	SecretKey SecretKey[T]

	TLWEEnc *TLWEEncryptor[T]
	GLWEEnc *GLWEEncryptor[T]
	Encoder *Encoder[T]
}

// NewEncryptor allocates an Encryptor with a freshly generated secret key.
func NewEncryptor[T TorusInt](params TLWEParameters[T]) *Encryptor[T] {
	tlweEnc := NewTLWEEncryptor[T](params)
	glweEnc := NewGLWEEncryptor[T](params)

	sk := SecretKey[T]{
		LWEKey:  tlweEnc.GenSecretKey(),
		GLWEKey: glweEnc.GenSecretKey(),
	}

	return NewEncryptorWithKey(params, sk)
}

// NewEncryptorWithKey allocates an Encryptor around an existing secret key,
// e.g. one restored from storage.
func NewEncryptorWithKey[T TorusInt](params TLWEParameters[T], sk SecretKey[T]) *Encryptor[T] {
	tlweEnc := NewTLWEEncryptor[T](params)
	glweEnc := NewGLWEEncryptor[T](params)

	return &Encryptor[T]{
		Params:    params,
		SecretKey: sk,
		TLWEEnc:   tlweEnc,
		GLWEEnc:   glweEnc,
		Encoder:   NewEncoder(tlweEnc),
	}
}

// ShallowCopy returns a copy of e with fresh, independently-seeded samplers,
// safe for use by another goroutine concurrently with e (teacher idiom).
func (e *Encryptor[T]) ShallowCopy() *Encryptor[T] {
	return NewEncryptorWithKey(e.Params, e.SecretKey)
}

// EncryptBool encrypts v under the gate-layer's ±1/8 encoding (§4.8), the
// convention every gate function expects.
func (e *Encryptor[T]) EncryptBool(v bool) TLWESample[T] {
	return e.TLWEEnc.Encrypt(muGate[T](v), e.SecretKey.LWEKey)
}

// DecryptBool decrypts ct using the gate-layer's ±1/8 encoding: phase closer
// to +1/8 decodes true, closer to -1/8 (≡ 7/8) decodes false. The decision
// boundary sits at 0 and 1/2, equidistant from both reference points, so
// decoding reduces to testing the sign bit of the phase.
func (e *Encryptor[T]) DecryptBool(ct TLWESample[T]) bool {
	ph := Phase(ct, e.SecretKey.LWEKey)
	return ph < muEighth[T]()<<2
}

// EncryptBoolSlice encrypts each bit of vs under the gate-layer encoding.
func (e *Encryptor[T]) EncryptBoolSlice(vs []bool) []TLWESample[T] {
	out := make([]TLWESample[T], len(vs))
	for i, v := range vs {
		out[i] = e.EncryptBool(v)
	}
	return out
}

// DecryptBoolSlice decrypts each ciphertext of cts under the gate-layer
// encoding.
func (e *Encryptor[T]) DecryptBoolSlice(cts []TLWESample[T]) []bool {
	out := make([]bool, len(cts))
	for i, ct := range cts {
		out[i] = e.DecryptBool(ct)
	}
	return out
}

// GenEvaluationKey derives the public cloud key for this secret key.
//
// This can take a long time; use GenEvaluationKeyParallel for large
// parameter sets.
func (e *Encryptor[T]) GenEvaluationKey() EvaluationKey[T] {
	return GenEvaluationKey(e.SecretKey, e.Params)
}

// GenEvaluationKeyParallel derives the public cloud key in parallel.
func (e *Encryptor[T]) GenEvaluationKeyParallel() EvaluationKey[T] {
	return GenEvaluationKeyParallel(e.SecretKey, e.Params)
}
