package tfhe

// KeySwitchAssign applies ksk to translate ct (of dimension
// len(ksk.Value)) down to a ciphertext of dimension n = KeySwitchParameters
// doesn't name directly — the output dimension is determined by outN,
// the configured small-key dimension, since every key-switch key row
// already encrypts under the output key.
//
// Procedure: decompose each input coordinate ct.A[i] into the key-switch
// gadget's ℓ levels, and subtract the corresponding weighted KSK row from a
// trivial encryption of ct.B (§3: "a TLWE encryption... of a scaled copy of
// that coordinate").
func KeySwitchAssign[T TorusInt](ksk KeySwitchKey[T], ct TLWESample[T], outN int, ctOut TLWESample[T]) {
	dec := NewDecomposer[T](ksk.Gadget)
	level := ksk.Gadget.Level()

	acc := TrivialTLWE[T](ct.B, outN)
	digits := make([]T, level)

	for i := range ct.A {
		dec.DecomposeAssign(ct.A[i], digits)
		for j := 0; j < level; j++ {
			row := ksk.Value[i][j]
			d := digits[j]
			for k := range acc.A {
				acc.A[k] -= d * row.A[k]
			}
			acc.B -= d * row.B
		}
	}

	copy(ctOut.A, acc.A)
	ctOut.B = acc.B
}
