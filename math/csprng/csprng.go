// Package csprng implements the random samplers used to generate secret
// keys and encryption noise.
//
// Every sampler owns an independent chacha20 stream keyed from
// crypto/rand at construction time, so samplers can be handed out one per
// goroutine (see ShallowCopy on the encryptor side) without any shared
// mutable PRNG state.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"

	"github.com/sp301415/tfhe-go/math/num"
	"github.com/sp301415/tfhe-go/math/poly"
)

// streamSource wraps a chacha20 cipher as a source of uniform random bytes.
type streamSource struct {
	cipher *chacha20.Cipher
	zeros  [4096]byte
}

func newStreamSource() *streamSource {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := rand.Read(key[:]); err != nil {
		panic(err)
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		panic(err)
	}

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &streamSource{cipher: c}
}

func (s *streamSource) read(p []byte) {
	for len(p) > 0 {
		n := len(p)
		if n > len(s.zeros) {
			n = len(s.zeros)
		}
		s.cipher.XORKeyStream(p[:n], s.zeros[:n])
		p = p[n:]
	}
}

func (s *streamSource) uint64() uint64 {
	var b [8]byte
	s.read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (s *streamSource) float64() float64 {
	// 53 bits of mantissa precision, uniform in [0, 1).
	return float64(s.uint64()>>11) / (1 << 53)
}

// UniformSampler samples uniform random values over the torus type T.
type UniformSampler[T poly.Number] struct {
	src *streamSource
}

// NewUniformSampler allocates a UniformSampler seeded from crypto/rand.
func NewUniformSampler[T poly.Number]() *UniformSampler[T] {
	return &UniformSampler[T]{src: newStreamSource()}
}

// ShallowCopy returns an independently-seeded copy, safe for use by another
// goroutine.
func (s *UniformSampler[T]) ShallowCopy() *UniformSampler[T] {
	return NewUniformSampler[T]()
}

// Sample returns a single uniform value of type T.
func (s *UniformSampler[T]) Sample() T {
	switch num.SizeT[T]() {
	case 32:
		var b [4]byte
		s.src.read(b[:])
		return T(binary.LittleEndian.Uint32(b[:]))
	default:
		return T(s.src.uint64())
	}
}

// SampleSliceAssign fills vOut with independent uniform samples.
func (s *UniformSampler[T]) SampleSliceAssign(vOut []T) {
	for i := range vOut {
		vOut[i] = s.Sample()
	}
}

// SamplePolyAssign fills pOut with independent uniform samples.
func (s *UniformSampler[T]) SamplePolyAssign(pOut poly.Poly[T]) {
	s.SampleSliceAssign(pOut.Coeffs)
}

// BinarySampler samples uniform {0, 1} values, used for binary secret keys.
type BinarySampler[T poly.Number] struct {
	src *streamSource
}

// NewBinarySampler allocates a BinarySampler seeded from crypto/rand.
func NewBinarySampler[T poly.Number]() *BinarySampler[T] {
	return &BinarySampler[T]{src: newStreamSource()}
}

// ShallowCopy returns an independently-seeded copy, safe for use by another
// goroutine.
func (s *BinarySampler[T]) ShallowCopy() *BinarySampler[T] {
	return NewBinarySampler[T]()
}

// Sample returns a single bit, 0 or 1.
func (s *BinarySampler[T]) Sample() T {
	var b [1]byte
	s.src.read(b[:])
	return T(b[0] & 1)
}

// SampleSliceAssign fills vOut with independent binary samples.
func (s *BinarySampler[T]) SampleSliceAssign(vOut []T) {
	for i := range vOut {
		vOut[i] = s.Sample()
	}
}

// SamplePolyAssign fills pOut with independent binary samples.
func (s *BinarySampler[T]) SamplePolyAssign(pOut poly.Poly[T]) {
	s.SampleSliceAssign(pOut.Coeffs)
}

// TernarySampler samples uniform {-1, 0, 1} values, used for ternary secret
// keys (see Supplemented Features).
type TernarySampler[T poly.Number] struct {
	src *streamSource
}

// NewTernarySampler allocates a TernarySampler seeded from crypto/rand.
func NewTernarySampler[T poly.Number]() *TernarySampler[T] {
	return &TernarySampler[T]{src: newStreamSource()}
}

// ShallowCopy returns an independently-seeded copy, safe for use by another
// goroutine.
func (s *TernarySampler[T]) ShallowCopy() *TernarySampler[T] {
	return NewTernarySampler[T]()
}

// Sample returns a single value in {-1, 0, 1}, each with probability 1/3.
// Rejection sampling over a byte avoids modulo bias.
func (s *TernarySampler[T]) Sample() T {
	for {
		var b [1]byte
		s.src.read(b[:])
		if b[0] >= 252 {
			continue
		}
		switch b[0] % 3 {
		case 0:
			return T(0)
		case 1:
			return T(1)
		default:
			return ^T(0)
		}
	}
}

// SampleSliceAssign fills vOut with independent ternary samples.
func (s *TernarySampler[T]) SampleSliceAssign(vOut []T) {
	for i := range vOut {
		vOut[i] = s.Sample()
	}
}

// SamplePolyAssign fills pOut with independent ternary samples.
func (s *TernarySampler[T]) SamplePolyAssign(pOut poly.Poly[T]) {
	s.SampleSliceAssign(pOut.Coeffs)
}

// GaussianSampler samples discretized centered Gaussian noise with a given
// standard deviation, scaled onto the torus type T.
//
// Samples are drawn with the Box-Muller transform. lattigo's ring package
// uses a Ziggurat algorithm for speed; Box-Muller is preferred here for its
// much smaller surface, since constant-time sampling is out of scope.
type GaussianSampler[T poly.Number] struct {
	src *streamSource

	hasSpare bool
	spare    float64
}

// NewGaussianSampler allocates a GaussianSampler seeded from crypto/rand.
func NewGaussianSampler[T poly.Number]() *GaussianSampler[T] {
	return &GaussianSampler[T]{src: newStreamSource()}
}

// ShallowCopy returns an independently-seeded copy, safe for use by another
// goroutine.
func (s *GaussianSampler[T]) ShallowCopy() *GaussianSampler[T] {
	return NewGaussianSampler[T]()
}

// normFloat64 returns a standard-normal sample via Box-Muller, buffering
// the second generated sample for the following call.
func (s *GaussianSampler[T]) normFloat64() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}

	var u1, u2 float64
	for u1 == 0 {
		u1 = s.src.float64()
	}
	u2 = s.src.float64()

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2

	s.spare = r * math.Sin(theta)
	s.hasSpare = true
	return r * math.Cos(theta)
}

// Sample draws a single centered Gaussian sample with standard deviation
// stddev (as a fraction of the torus, i.e. in [0, 1)), rounded to the
// nearest representable torus value of T.
func (s *GaussianSampler[T]) Sample(stddev float64) T {
	floatQ := math.Exp2(float64(num.SizeT[T]()))
	x := s.normFloat64() * stddev * floatQ
	return T(math.Round(x))
}

// SampleSliceAssign fills vOut with independent Gaussian samples of the
// given standard deviation.
func (s *GaussianSampler[T]) SampleSliceAssign(stddev float64, vOut []T) {
	for i := range vOut {
		vOut[i] = s.Sample(stddev)
	}
}

// SamplePolyAssign fills pOut with independent Gaussian samples of the
// given standard deviation.
func (s *GaussianSampler[T]) SamplePolyAssign(stddev float64, pOut poly.Poly[T]) {
	s.SampleSliceAssign(stddev, pOut.Coeffs)
}

// SampleSliceAddAssign adds independent Gaussian samples of the given
// standard deviation onto vOut.
func (s *GaussianSampler[T]) SampleSliceAddAssign(stddev float64, vOut []T) {
	for i := range vOut {
		vOut[i] += s.Sample(stddev)
	}
}
