package subtle

import (
	"math"
	"math/big"
)

// ff31Rounds is the Feistel round count fixed by SP 800-38G rev. 1.
const ff31Rounds = 8

// ff31TweakLen is the tweak length fixed by the FF3-1 specification.
const ff31TweakLen = 7

// FF31 is the raw-key FF3-1 context. It supports AES-128, AES-192, and
// AES-256 keys, requires exactly 7-byte tweaks, and bounds the input
// length at floor(192 / log2(radix)) characters. An FF31 is immutable
// after construction and safe for concurrent use.
type FF31 struct {
	ffx *FFX
}

// NewFF31 builds an FF3-1 context. twk, if non-nil, becomes the default
// tweak and must be exactly 7 bytes.
func NewFF31(key, twk []byte, radix int, alpha string) (*FF31, error) {
	// ff3-1 keys AES with the byte-reversed key
	k := make([]byte, len(key))
	for i, c := range key {
		k[len(key)-i-1] = c
	}

	// the maximum length follows from each half being bounded by 2**96:
	//  maxlen = 2 * log_radix(2**96) = 192 / log2(radix)
	maxtxt := 0
	if radix >= 2 {
		maxtxt = int(192 / math.Log2(float64(radix)))
	}

	ffx, err := NewFFX(k, twk, maxtxt, ff31TweakLen, ff31TweakLen, radix, alpha)
	if err != nil {
		return nil, err
	}
	return &FF31{ffx: ffx}, nil
}

// Encrypt enciphers plaintext, using twk in place of the default tweak
// when non-nil. The ciphertext has the same length and alphabet as the
// plaintext.
func (f *FF31) Encrypt(plaintext string, twk []byte) (string, error) {
	return f.cipherString(plaintext, twk, true)
}

// Decrypt inverts Encrypt. The tweak must match the one used to encrypt.
func (f *FF31) Decrypt(ciphertext string, twk []byte) (string, error) {
	return f.cipherString(ciphertext, twk, false)
}

func (f *FF31) cipherString(s string, twk []byte, enc bool) (string, error) {
	out, err := f.cipherChars([]rune(s), twk, enc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// cipherChars runs the eight Feistel rounds over inp. The algorithm calls
// for the halves to be read in reverse at several points; reversing them
// once before the loop and once after is equivalent and leaves the round
// body working on plain numbers. Output is bit-identical to the NIST
// specification.
func (f *FF31) cipherChars(inp []rune, twk []byte, enc bool) ([]rune, error) {
	ffx := f.ffx
	radix := ffx.Radix()

	n := len(inp)
	if err := ffx.ValidateTextLength(n); err != nil {
		return nil, err
	}

	// (step 1)
	v := n / 2
	u := n - v

	T := ffx.Tweak(twk)
	if err := ffx.ValidateTweakLength(len(T)); err != nil {
		return nil, err
	}

	// the 56-bit tweak splits into two 32-bit halves sharing the nibbles
	// of T[3] (step 3)
	var tw [2][4]byte
	copy(tw[0][:3], T[:3])
	tw[0][3] = T[3] & 0xf0
	copy(tw[1][:3], T[4:])
	tw[1][3] = (T[3] & 0x0f) << 4

	// radix**v and radix**u are needed every round; u is either equal to
	// v or one more (step 4v, partial)
	mv := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(v)), nil)
	mu := new(big.Int).Set(mv)
	if u != v {
		mu.Mul(mu, big.NewInt(int64(radix)))
	}

	// (step 2, fused with the up-front reversal)
	na, err := ffx.NumRadix(reversedRunes(inp[:u]))
	if err != nil {
		return nil, err
	}
	nb, err := ffx.NumRadix(reversedRunes(inp[u:]))
	if err != nil {
		return nil, err
	}

	if !enc {
		na, nb = nb, na
		mu, mv = mv, mu
		tw[0], tw[1] = tw[1], tw[0]
	}

	var p, c [16]byte
	y := new(big.Int)
	for i := 0; i < ff31Rounds; i++ {
		// (step 4i, 4ii)
		copy(p[:4], tw[(i+1)%2][:])
		if enc {
			p[3] ^= byte(i)
		} else {
			p[3] ^= byte(ff31Rounds - 1 - i)
		}
		// the numeric half contributes its low 96 bits; at the maximum
		// text length the half can be one digit past 2**96, and the
		// excess is discarded on both the encrypt and decrypt paths
		fillBE(p[4:16], nb)

		// ff3-1 runs AES over the byte-reversed block (step 4iii)
		reverseBytes(p[:])
		if err := ffx.Ciph(c[:], p[:]); err != nil {
			return nil, err
		}
		reverseBytes(c[:])

		// (step 4iv)
		y.SetBytes(c[:])

		// (step 4v)
		if enc {
			na.Add(na, y)
		} else {
			na.Sub(na, y)
		}
		na.Mod(na, mu)

		mu, mv = mv, mu
		// (step 4vii, 4viii; step 4vi is subsumed by the up-front reversal)
		na, nb = nb, na
	}

	// decryption ran with the halves swapped; put them back
	if !enc {
		na, nb = nb, na
	}

	// convert back to letters and restore the original ordering (step 5)
	A, err := ffx.StrMRadix(na, u)
	if err != nil {
		return nil, err
	}
	B, err := ffx.StrMRadix(nb, v)
	if err != nil {
		return nil, err
	}
	return append(reversedRunes(A), reversedRunes(B)...), nil
}

// fillBE writes the low 8*len(dst) bits of n into dst, big-endian,
// zero-padded on the left.
func fillBE(dst []byte, n *big.Int) {
	b := n.Bytes()
	if len(b) > len(dst) {
		b = b[len(b)-len(dst):]
	}
	for i := range dst[:len(dst)-len(b)] {
		dst[i] = 0
	}
	copy(dst[len(dst)-len(b):], b)
}

// reversedRunes returns a reversed copy of x.
func reversedRunes(x []rune) []rune {
	out := make([]rune, len(x))
	for i, c := range x {
		out[len(x)-i-1] = c
	}
	return out
}

// reverseBytes reverses x in place.
func reverseBytes(x []byte) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
