package tfhe

import "github.com/sp301415/tfhe-go/math/poly"

// GGSWSample is the ring-valued (polynomial) analogue of TGSWSample: a
// (k+1)*ℓ matrix of GLWE samples, used by the bootstrapping key and the
// blind-rotation CMux chain (§9, design note on "Generic polynomial TLWE",
// option (a)).
type GGSWSample[T TorusInt] struct {
	// Rows has length k+1; Rows[i] has length ℓ.
	Rows [][]GLWESample[T]
}

// NewGGSWSample allocates a zero GGSWSample for the given parameters.
func NewGGSWSample[T TorusInt](params TLWEParameters[T], gadget GadgetParameters[T]) GGSWSample[T] {
	k := params.GLWERank()
	N := params.PolyDegree()
	level := gadget.Level()

	rows := make([][]GLWESample[T], k+1)
	for i := range rows {
		rows[i] = make([]GLWESample[T], level)
		for j := range rows[i] {
			rows[i][j] = NewGLWESample[T](k, N)
		}
	}
	return GGSWSample[T]{Rows: rows}
}

// GGSWEncryptor draws GGSW encryptions under a GLWE secret key.
type GGSWEncryptor[T TorusInt] struct {
	Params TLWEParameters[T]
	Gadget GadgetParameters[T]

	GLWEEnc *GLWEEncryptor[T]
}

// NewGGSWEncryptor allocates a GGSWEncryptor seeded from crypto/rand.
func NewGGSWEncryptor[T TorusInt](params TLWEParameters[T], gadget GadgetParameters[T]) *GGSWEncryptor[T] {
	return &GGSWEncryptor[T]{
		Params:  params,
		Gadget:  gadget,
		GLWEEnc: NewGLWEEncryptor[T](params),
	}
}

// Encrypt returns a GGSW encryption of the small integer message under sk.
// Row i, level j is a GLWE encryption of -message*h_{i,j}*S_i, save for the
// last row which carries message*h_{i,j} alone (§3 lifted to the ring
// case).
func (e *GGSWEncryptor[T]) Encrypt(message int64, sk GLWESecretKey[T]) GGSWSample[T] {
	k := e.Params.GLWERank()
	N := e.Params.PolyDegree()
	level := e.Gadget.Level()
	logLastScale := e.Gadget.LogLastScale()
	baseLog := e.Gadget.BaseLog()

	ct := NewGGSWSample[T](e.Params, e.Gadget)

	zero := poly.NewPoly[T](N)
	for j := 0; j < level; j++ {
		shift := logLastScale + baseLog*(level-1-j)
		h := T(1) << shift

		for i := 0; i <= k; i++ {
			mu := zero.Copy()
			if i == k {
				mu.Coeffs[0] = T(message) * h
			} else {
				e.GLWEEnc.PolyEvaluator.ScalarMulAssign(sk.Value[i], T(-message)*h, mu)
			}
			ct.Rows[i][j] = e.GLWEEnc.Encrypt(mu, sk)
		}
	}
	return ct
}

// ExternalProductGGSWAssign computes ctOut = ggsw ⊡ ct over GLWE samples,
// the ring analogue of ExternalProductAssign.
func ExternalProductGGSWAssign[T TorusInt](pe *poly.Evaluator[T], dec *Decomposer[T], ggsw GGSWSample[T], ct GLWESample[T], ctOut GLWESample[T]) {
	k := len(ct.A)
	N := ct.B.Degree()
	level := dec.Params.Level()

	decomposed := make([]poly.Poly[T], level)
	for j := range decomposed {
		decomposed[j] = poly.NewPoly[T](N)
	}

	acc := NewGLWESample[T](k, N)
	tmp := poly.NewPoly[T](N)

	for i := 0; i <= k; i++ {
		var coord poly.Poly[T]
		if i < k {
			coord = ct.A[i]
		} else {
			coord = ct.B
		}

		dec.DecomposePolyAssign(coord, decomposed)
		for j := 0; j < level; j++ {
			row := ggsw.Rows[i][j]
			for m := 0; m <= k; m++ {
				var target poly.Poly[T]
				if m < k {
					target = acc.A[m]
				} else {
					target = acc.B
				}

				var src poly.Poly[T]
				if m < k {
					src = row.A[m]
				} else {
					src = row.B
				}

				pe.MulAssign(decomposed[j], src, tmp)
				pe.AddAssign(target, tmp, target)
			}
		}
	}

	for i := range ctOut.A {
		pe.CopyFrom(acc.A[i], ctOut.A[i])
	}
	pe.CopyFrom(acc.B, ctOut.B)
}

// CMuxGGSWAssign computes ctOut = c0 + (selector ⊡ (c1 - c0)) over GLWE
// samples — the blind-rotation primitive of §4.5/§4.7.
func CMuxGGSWAssign[T TorusInt](pe *poly.Evaluator[T], dec *Decomposer[T], selector GGSWSample[T], c0, c1, ctOut GLWESample[T]) {
	diff := c0.Copy()
	SubGLWEAssign(c1, c0, diff)

	prod := NewGLWESample[T](len(c0.A), c0.B.Degree())
	ExternalProductGGSWAssign(pe, dec, selector, diff, prod)

	AddGLWEAssign(c0, prod, ctOut)
}
