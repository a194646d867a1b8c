package tfhe

import "github.com/sp301415/tfhe-go/math/num"

// Encoder maps Booleans to torus constants and decodes ciphertext phases
// back to Booleans (§4.9). It uses the general-purpose encoding of §4.4
// (μ_true = 1/2, decoding bucket (1/4, 3/4)), distinct from the gate
// layer's own ±1/8 convention in §4.8 (gates.go), which trades decoding
// margin for headroom to compose several gates' worth of noise.
type Encoder[T TorusInt] struct {
	Enc *TLWEEncryptor[T]
}

// NewEncoder wraps an existing TLWEEncryptor.
func NewEncoder[T TorusInt](enc *TLWEEncryptor[T]) *Encoder[T] {
	return &Encoder[T]{Enc: enc}
}

// muHalf is the torus constant 1/2, encoded as the midpoint of T's range.
func muHalf[T TorusInt]() T {
	return T(1) << (num.SizeT[T]() - 1)
}

// EncodeBool returns μ = 1/2 for true, μ = 0 for false.
func EncodeBool[T TorusInt](v bool) T {
	if v {
		return muHalf[T]()
	}
	return 0
}

// EncryptBool encrypts v under sk using the general-purpose encoding.
func (e *Encoder[T]) EncryptBool(v bool, sk TLWESecretKey[T]) TLWESample[T] {
	return e.Enc.Encrypt(EncodeBool[T](v), sk)
}

// DecryptBool decrypts ct using the general-purpose decoding bucket (1/4,
// 3/4).
func (e *Encoder[T]) DecryptBool(ct TLWESample[T], sk TLWESecretKey[T]) bool {
	return DecryptBool(ct, sk)
}

// EncryptBoolSlice encrypts a slice of bits coordinatewise — the
// "straightforward lift" of §4.9's "bit-array helpers".
func (e *Encoder[T]) EncryptBoolSlice(vs []bool, sk TLWESecretKey[T]) []TLWESample[T] {
	out := make([]TLWESample[T], len(vs))
	for i, v := range vs {
		out[i] = e.EncryptBool(v, sk)
	}
	return out
}

// DecryptBoolSlice decrypts a slice of ciphertexts coordinatewise.
func (e *Encoder[T]) DecryptBoolSlice(cts []TLWESample[T], sk TLWESecretKey[T]) []bool {
	out := make([]bool, len(cts))
	for i, ct := range cts {
		out[i] = e.DecryptBool(ct, sk)
	}
	return out
}
