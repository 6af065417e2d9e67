package subtle

import (
	"encoding/binary"
	"math"
	"math/big"
)

// ff1Rounds is the Feistel round count fixed by SP 800-38G.
const ff1Rounds = 10

// FF1 is the raw-key FF1 context. It supports AES-128, AES-192, and
// AES-256 keys, a caller-chosen tweak length window, and inputs of up to
// 2^32 - 1 characters. An FF1 is immutable after construction and safe
// for concurrent use.
type FF1 struct {
	ffx *FFX
}

// NewFF1 builds an FF1 context. twk, if non-nil, becomes the default
// tweak for operations that do not supply one. mintwk and maxtwk bound
// the tweak length; both zero leaves it unbounded.
func NewFF1(key, twk []byte, mintwk, maxtwk, radix int, alpha string) (*FF1, error) {
	ffx, err := NewFFX(key, twk, 1<<32-1, mintwk, maxtwk, radix, alpha)
	if err != nil {
		return nil, err
	}
	return &FF1{ffx: ffx}, nil
}

// Encrypt enciphers plaintext, using twk in place of the default tweak
// when non-nil. The ciphertext has the same length and alphabet as the
// plaintext.
func (f *FF1) Encrypt(plaintext string, twk []byte) (string, error) {
	return f.cipherString(plaintext, twk, true)
}

// Decrypt inverts Encrypt. The tweak must match the one used to encrypt.
func (f *FF1) Decrypt(ciphertext string, twk []byte) (string, error) {
	return f.cipherString(ciphertext, twk, false)
}

func (f *FF1) cipherString(s string, twk []byte, enc bool) (string, error) {
	out, err := f.cipherChars([]rune(s), twk, enc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// cipherChars runs the ten Feistel rounds over inp. Encryption and
// decryption share the loop: decryption pre-swaps the halves and moduli,
// reverses the round counter, and subtracts where encryption adds.
func (f *FF1) cipherChars(inp []rune, twk []byte, enc bool) ([]rune, error) {
	ffx := f.ffx
	radix := ffx.Radix()
	blksz := ffx.BlockSize()

	T := ffx.Tweak(twk)
	if err := ffx.ValidateTweakLength(len(T)); err != nil {
		return nil, err
	}

	n := len(inp)
	if err := ffx.ValidateTextLength(n); err != nil {
		return nil, err
	}

	// (step 1)
	u := n / 2
	v := n - u

	// the two halves spend the whole algorithm in numeric form and are
	// only converted back to letters at the end (step 2)
	na, err := ffx.NumRadix(inp[:u])
	if err != nil {
		return nil, err
	}
	nb, err := ffx.NumRadix(inp[u:])
	if err != nil {
		return nil, err
	}

	// b bytes hold the numeric value of the latter half (step 3);
	// d bytes of cipher output feed each round's y (step 4)
	b := (int(math.Ceil(math.Log2(float64(radix))*float64(v))) + 7) / 8
	d := 4*((b+3)/4) + 4

	// p is the block-aligned input to the PRF. Its first 16 bytes are the
	// fixed prefix the algorithm calls P; the rest is Q: the tweak, zero
	// padding, the round counter, and the numeric half. Laying Q out in
	// the same buffer lets one PRF pass cover P || Q. (step 5)
	p := make([]byte, 16+(len(T)+1+b+blksz-1)/blksz*blksz)
	r := make([]byte, (d+blksz-1)/blksz*blksz)

	p[0], p[1] = 1, 2
	// the radix goes in bytes 3..6 as a 24-bit big-endian value; writing
	// 32 bits at offset 2 and then restoring byte 2 avoids shift-and-mask
	binary.BigEndian.PutUint32(p[2:6], uint32(radix))
	p[2] = 1
	p[6] = 10
	p[7] = byte(u)
	binary.BigEndian.PutUint32(p[8:12], uint32(n))
	binary.BigEndian.PutUint32(p[12:16], uint32(len(T)))
	copy(p[16:], T)

	// radix**u and radix**v are needed every round; u is either equal to
	// v or one less (step 6v, 6vi, partial)
	mu := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(u)), nil)
	mv := new(big.Int).Set(mu)
	if u != v {
		mv.Mul(mv, big.NewInt(int64(radix)))
	}

	if !enc {
		na, nb = nb, na
		mu, mv = mv, mu
	}

	y := new(big.Int)
	for i := 0; i < ff1Rounds; i++ {
		// round counter and numeric half are the only parts of q that
		// change between rounds (step 6i)
		q := p[16:]
		if enc {
			q[len(q)-b-1] = byte(i)
		} else {
			q[len(q)-b-1] = byte(ff1Rounds - 1 - i)
		}
		nb.FillBytes(q[len(q)-b:])

		// (step 6ii)
		if err := ffx.PRF(r[:blksz], p); err != nil {
			return nil, err
		}

		// when d exceeds one block, the output is extended with
		// ciph(r0 ^ [j]) for j = 1, 2, ...; the xor only touches the last
		// four bytes of r0, which are restored after each call (step 6iii)
		for j := 1; j < len(r)/blksz; j++ {
			w := binary.BigEndian.Uint32(r[blksz-4 : blksz])
			binary.BigEndian.PutUint32(r[blksz-4:blksz], w^uint32(j))
			if err := ffx.Ciph(r[j*blksz:(j+1)*blksz], r[:blksz]); err != nil {
				return nil, err
			}
			binary.BigEndian.PutUint32(r[blksz-4:blksz], w)
		}

		// (step 6iv)
		y.SetBytes(r[:d])

		// (step 6vi)
		if enc {
			na.Add(na, y)
		} else {
			na.Sub(na, y)
		}
		na.Mod(na, mu)

		// (step 6v, partial)
		mu, mv = mv, mu
		// (step 6viii, 6ix; step 6vii is subsumed by the swap)
		na, nb = nb, na
	}

	// decryption ran with the halves swapped; put them back
	if !enc {
		na, nb = nb, na
	}

	// (step 7)
	A, err := f.ffx.StrMRadix(na, u)
	if err != nil {
		return nil, err
	}
	B, err := f.ffx.StrMRadix(nb, v)
	if err != nil {
		return nil, err
	}
	return append(A, B...), nil
}
