package ffx

import "github.com/vdparikh/ffx/subtle"

// FF31 is an FF3-1 encryption context. It holds the key, the default
// tweak, and the alphabet. FF3-1 requires exactly 7-byte tweaks and
// bounds the input length at floor(192 / log2(radix)) characters.
type FF31 struct {
	ff31 *subtle.FF31
}

// NewFF31 creates an FF3-1 context.
//
// The key must be 16, 24, or 32 bytes; the algorithm keys AES with its
// bytes reversed, as the specification requires. tweak, if non-nil,
// becomes the default tweak and must be exactly 7 bytes. If no default is
// supplied, every operation must supply its own.
func NewFF31(key, tweak []byte, radix int, alphabet string) (*FF31, error) {
	ff31, err := subtle.NewFF31(key, tweak, radix, alphabet)
	if err != nil {
		return nil, err
	}
	return &FF31{ff31: ff31}, nil
}

// Encrypt enciphers plaintext. A non-nil tweak is used in place of the
// context default.
func (f *FF31) Encrypt(plaintext string, tweak []byte) (string, error) {
	return f.ff31.Encrypt(plaintext, tweak)
}

// Decrypt inverts Encrypt. The tweak must match the one used to encrypt.
func (f *FF31) Decrypt(ciphertext string, tweak []byte) (string, error) {
	return f.ff31.Decrypt(ciphertext, tweak)
}

var _ FPE = (*FF31)(nil)

// EncryptFF31 enciphers plaintext with a throwaway FF3-1 context and the
// supplied 7-byte tweak.
func EncryptFF31(key, tweak []byte, plaintext string, radix int, alphabet string) (string, error) {
	f, err := NewFF31(key, nil, radix, alphabet)
	if err != nil {
		return "", err
	}
	return f.Encrypt(plaintext, tweak)
}

// DecryptFF31 is the inverse of EncryptFF31.
func DecryptFF31(key, tweak []byte, ciphertext string, radix int, alphabet string) (string, error) {
	f, err := NewFF31(key, nil, radix, alphabet)
	if err != nil {
		return "", err
	}
	return f.Decrypt(ciphertext, tweak)
}
