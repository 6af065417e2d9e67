// Package subtle implements the raw-key FF1 and FF3-1 primitives from
// NIST SP 800-38G. It works directly with keys, tweaks, and alphabets and
// performs no key management; most users should use the high-level APIs
// in the parent package or the Tink integration in tinkfpe.
package subtle

import (
	"fmt"
	"math"
	"math/big"
)

type sizeLimits struct {
	min, max int
}

// FFX holds the state shared by the FF1 and FF3-1 Feistel drivers: the
// keyed cipher, the default tweak, the text and tweak length windows, and
// the alphabet. An FFX is immutable after construction and safe for
// concurrent use; the PRF starts a fresh CBC chain on every call.
type FFX struct {
	cipher *Cipher
	twk    []byte
	txtlen sizeLimits
	twklen sizeLimits
	alpha  *Alphabet
}

// NewFFX builds the shared context. The key must be an AES key length.
// twk, if non-nil, becomes the default tweak and must satisfy the
// [mintwk, maxtwk] window; maxtwk == 0 leaves the tweak length unbounded
// above. The radix selects how many letters of alpha (or of the default
// alphabet, when alpha is empty) are in play.
func NewFFX(key, twk []byte, maxtxt, mintwk, maxtwk, radix int, alpha string) (*FFX, error) {
	if radix < 2 {
		return nil, fmt.Errorf("%w: must be at least 2, got %d", ErrInvalidRadix, radix)
	}

	a, err := NewAlphabet(alpha, radix)
	if err != nil {
		return nil, err
	}

	// the minimum length for both ff1 and ff3-1 comes from the
	// requirement radix**minlen >= 1,000,000:
	//  minlen = ceil(log_radix(1_000_000)) = ceil(6 / log_10(radix))
	mintxt := int(math.Ceil(6 / math.Log10(float64(radix))))
	if mintxt < 2 || mintxt > maxtxt {
		return nil, fmt.Errorf(
			"%w: unsupported combination of radix and maximum length; minimum required length is %d, maximum allowed is %d",
			ErrInvalidTextLength, mintxt, maxtxt)
	}

	if mintwk > maxtwk {
		return nil, fmt.Errorf("%w: minimum %d exceeds maximum %d", ErrInvalidTweakLength, mintwk, maxtwk)
	}

	cipher, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	f := &FFX{
		cipher: cipher,
		txtlen: sizeLimits{min: mintxt, max: maxtxt},
		twklen: sizeLimits{min: mintwk, max: maxtwk},
		alpha:  a,
	}

	if twk != nil {
		if err := f.ValidateTweakLength(len(twk)); err != nil {
			return nil, err
		}
		f.twk = append([]byte(nil), twk...)
	}

	return f, nil
}

// Radix returns the number of letters in the alphabet.
func (f *FFX) Radix() int {
	return f.alpha.Len()
}

// BlockSize returns the underlying cipher's block size.
func (f *FFX) BlockSize() int {
	return f.cipher.BlockSize()
}

// Tweak resolves the tweak for one operation: the supplied tweak when
// non-nil, the context default otherwise.
func (f *FFX) Tweak(twk []byte) []byte {
	if twk == nil {
		return f.twk
	}
	return twk
}

// ValidateTextLength checks n against the text length window.
func (f *FFX) ValidateTextLength(n int) error {
	if n < f.txtlen.min || n > f.txtlen.max {
		return fmt.Errorf("%w: expected between %d and %d characters, got %d",
			ErrInvalidTextLength, f.txtlen.min, f.txtlen.max, n)
	}
	return nil
}

// ValidateTweakLength checks n against the tweak length window. A zero
// maximum means the length is unbounded above.
func (f *FFX) ValidateTweakLength(n int) error {
	if n < f.twklen.min || (f.twklen.max > 0 && n > f.twklen.max) {
		switch {
		case f.twklen.max > 0 && f.twklen.min == f.twklen.max:
			return fmt.Errorf("%w: expected exactly %d bytes, got %d",
				ErrInvalidTweakLength, f.twklen.min, n)
		case f.twklen.max > 0:
			return fmt.Errorf("%w: expected between %d and %d bytes, got %d",
				ErrInvalidTweakLength, f.twklen.min, f.twklen.max, n)
		default:
			return fmt.Errorf("%w: expected at least %d bytes, got %d",
				ErrInvalidTweakLength, f.twklen.min, n)
		}
	}
	return nil
}

// PRF runs src through AES-CBC with a zero IV and writes the final
// ciphertext block to dst[:16]. Every call starts a fresh chain, so the
// result depends only on the key and src. src must be a whole number of
// blocks.
func (f *FFX) PRF(dst, src []byte) error {
	blksz := f.cipher.BlockSize()
	if len(src)%blksz != 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidBlockAlignment, len(src))
	}

	mode := f.cipher.NewCBC()
	for i := 0; i < len(src); i += blksz {
		mode.CryptBlocks(dst[:blksz], src[i:i+blksz])
	}
	return nil
}

// Ciph enciphers the single block src[:16] into dst[:16].
func (f *FFX) Ciph(dst, src []byte) error {
	return f.PRF(dst, src[:f.cipher.BlockSize()])
}

// NumRadix interprets chars as numerals in the context's radix, in
// decreasing order of significance, and returns the number they represent.
func (f *FFX) NumRadix(chars []rune) (*big.Int, error) {
	r := big.NewInt(int64(f.alpha.Len()))
	d := new(big.Int)

	n := new(big.Int)
	for _, c := range chars {
		i, err := f.alpha.Ltr(c)
		if err != nil {
			return nil, err
		}
		n.Mul(n, r)
		n.Add(n, d.SetInt64(int64(i)))
	}
	return n, nil
}

// StrMRadix renders n as letters in the context's radix, most significant
// first, left-padded with the zero-th letter of the alphabet to m
// characters when needed.
func (f *FFX) StrMRadix(n *big.Int, m int) ([]rune, error) {
	r := big.NewInt(int64(f.alpha.Len()))
	d := new(big.Int)

	zero, err := f.alpha.Pos(0)
	if err != nil {
		return nil, err
	}

	chars := make([]rune, 0, m)
	for x := new(big.Int).Set(n); x.Sign() > 0; {
		x.DivMod(x, r, d)
		c, err := f.alpha.Pos(int(d.Int64()))
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	if len(chars) == 0 {
		chars = append(chars, zero)
	}
	for len(chars) < m {
		chars = append(chars, zero)
	}

	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return chars, nil
}
