package tfhe

// TGSWParametersLiteral is the user-facing TGSW parameter set over a flat
// TLWE (§3: "(ℓ, Bg_bits, TLWE params)").
type TGSWParametersLiteral[T TorusInt] struct {
	TLWE   TLWEParametersLiteral[T]
	Gadget GadgetParametersLiteral[T]
}

// TGSWParameters is the compiled form of TGSWParametersLiteral.
type TGSWParameters[T TorusInt] struct {
	TLWE   TLWEParameters[T]
	Gadget GadgetParameters[T]
}

// Compile validates and compiles p.
func (p TGSWParametersLiteral[T]) Compile() TGSWParameters[T] {
	return TGSWParameters[T]{
		TLWE:   p.TLWE.Compile(),
		Gadget: p.Gadget.Compile(),
	}
}

// TGSWSample is a (n+1)*ℓ matrix of TLWE samples: row i, level j is a TLWE
// encryption of message * h_{i,j}, the gadget entry at coordinate i, level j
// (§3). Row n (the last row) carries the message itself; rows 0..n-1 carry
// -s_i*message.
type TGSWSample[T TorusInt] struct {
	// Rows has length n+1; Rows[i] has length ℓ.
	Rows [][]TLWESample[T]
}

// NewTGSWSample allocates a zero TGSWSample for the given parameters.
func NewTGSWSample[T TorusInt](params TGSWParameters[T]) TGSWSample[T] {
	n := params.TLWE.LWEDimension()
	level := params.Gadget.Level()

	rows := make([][]TLWESample[T], n+1)
	for i := range rows {
		rows[i] = make([]TLWESample[T], level)
		for j := range rows[i] {
			rows[i][j] = NewTLWESample[T](n)
		}
	}
	return TGSWSample[T]{Rows: rows}
}

// TGSWEncryptor draws TGSW encryptions under a flat TLWE secret key.
type TGSWEncryptor[T TorusInt] struct {
	Params TGSWParameters[T]
	TLWEEnc *TLWEEncryptor[T]
}

// NewTGSWEncryptor allocates a TGSWEncryptor seeded from crypto/rand.
func NewTGSWEncryptor[T TorusInt](params TGSWParameters[T]) *TGSWEncryptor[T] {
	return &TGSWEncryptor[T]{
		Params:  params,
		TLWEEnc: NewTLWEEncryptor[T](params.TLWE),
	}
}

// Encrypt returns a TGSW encryption of the small integer message under sk
// (§3, §4.6: used both directly, and to build bootstrapping-key entries in
// the non-ring case).
func (e *TGSWEncryptor[T]) Encrypt(message int64, sk TLWESecretKey[T]) TGSWSample[T] {
	ct := NewTGSWSample[T](e.Params)
	n := e.Params.TLWE.LWEDimension()
	level := e.Params.Gadget.Level()
	logLastScale := e.Params.Gadget.LogLastScale()
	baseLog := e.Params.Gadget.BaseLog()

	for j := 0; j < level; j++ {
		shift := logLastScale + baseLog*(level-1-j)
		h := T(1) << shift

		for i := 0; i <= n; i++ {
			var mu T
			if i == n {
				mu = T(message) * h
			} else {
				mu = T(-message) * T(sk.Value[i]) * h
			}
			ct.Rows[i][j] = e.TLWEEnc.Encrypt(mu, sk)
		}
	}
	return ct
}

// ExternalProductAssign computes ctOut = ggsw ⊡ ct: decompose every
// coordinate of ct, then sum the gadget rows weighted by the decomposition
// digits (§4.5).
func ExternalProductAssign[T TorusInt](dec *Decomposer[T], ggsw TGSWSample[T], ct TLWESample[T], ctOut TLWESample[T]) {
	n := len(ct.A)
	level := dec.Params.Level()

	digits := make([]T, level)
	acc := NewTLWESample[T](n)

	for i := 0; i <= n; i++ {
		var coord T
		if i < n {
			coord = ct.A[i]
		} else {
			coord = ct.B
		}

		dec.DecomposeAssign(coord, digits)
		for j := 0; j < level; j++ {
			row := ggsw.Rows[i][j]
			d := digits[j]
			for k := range acc.A {
				acc.A[k] += d * row.A[k]
			}
			acc.B += d * row.B
		}
	}

	copy(ctOut.A, acc.A)
	ctOut.B = acc.B
}

// CMuxAssign computes ctOut = c0 + (selector ⊡ (c1 - c0)), the conditional
// multiplexer of §4.5: returns c0 if selector encrypts 0, c1 if it encrypts
// 1.
func CMuxAssign[T TorusInt](dec *Decomposer[T], selector TGSWSample[T], c0, c1 TLWESample[T], ctOut TLWESample[T]) {
	diff := SubTLWE(c1, c0)
	prod := NewTLWESample[T](len(c0.A))
	ExternalProductAssign(dec, selector, diff, prod)

	sum := AddTLWE(c0, prod)
	copy(ctOut.A, sum.A)
	ctOut.B = sum.B
}
