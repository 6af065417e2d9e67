package ffx

import "github.com/vdparikh/ffx/subtle"

// FF1 is an FF1 encryption context. It holds the key, the default tweak,
// the tweak length window, and the alphabet. FF1 accepts tweaks of any
// length within the window and inputs of up to 2^32 - 1 characters.
type FF1 struct {
	ff1 *subtle.FF1
}

// NewFF1 creates an FF1 context.
//
// The key must be 16, 24, or 32 bytes. tweak, if non-nil, becomes the
// default tweak for operations that do not supply one; its length must
// satisfy the [mintwk, maxtwk] window. Setting both mintwk and maxtwk to
// zero leaves the tweak length unbounded. The radix must be at most the
// number of characters in alphabet (or in the default alphabet, when
// alphabet is empty).
func NewFF1(key, tweak []byte, mintwk, maxtwk, radix int, alphabet string) (*FF1, error) {
	ff1, err := subtle.NewFF1(key, tweak, mintwk, maxtwk, radix, alphabet)
	if err != nil {
		return nil, err
	}
	return &FF1{ff1: ff1}, nil
}

// Encrypt enciphers plaintext. A non-nil tweak is used in place of the
// context default.
func (f *FF1) Encrypt(plaintext string, tweak []byte) (string, error) {
	return f.ff1.Encrypt(plaintext, tweak)
}

// Decrypt inverts Encrypt. The tweak must match the one used to encrypt.
func (f *FF1) Decrypt(ciphertext string, tweak []byte) (string, error) {
	return f.ff1.Decrypt(ciphertext, tweak)
}

var _ FPE = (*FF1)(nil)

// EncryptFF1 enciphers plaintext with a throwaway FF1 context: no default
// tweak, unbounded tweak length window.
func EncryptFF1(key, tweak []byte, plaintext string, radix int, alphabet string) (string, error) {
	f, err := NewFF1(key, nil, 0, 0, radix, alphabet)
	if err != nil {
		return "", err
	}
	return f.Encrypt(plaintext, tweak)
}

// DecryptFF1 is the inverse of EncryptFF1.
func DecryptFF1(key, tweak []byte, ciphertext string, radix int, alphabet string) (string, error) {
	f, err := NewFF1(key, nil, 0, 0, radix, alphabet)
	if err != nil {
		return "", err
	}
	return f.Decrypt(ciphertext, tweak)
}
