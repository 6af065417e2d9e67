package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Cipher is the AES primitive underneath both FF1 and FF3-1. The variant
// (AES-128, AES-192, AES-256) is selected by the key length. The keyed
// block is immutable and safe to share; all CBC chain state lives in the
// BlockMode returned by NewCBC, so callers that need the FF1 PRF start a
// fresh chain per call instead of mutating shared state.
type Cipher struct {
	block cipher.Block
}

// NewCipher returns a Cipher keyed with key. The key must be 16, 24, or
// 32 bytes.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 24, or 32", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{block: block}, nil
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int {
	return c.block.BlockSize()
}

// NewCBC starts a fresh CBC encryption chain with a zero IV.
func (c *Cipher) NewCBC() cipher.BlockMode {
	return cipher.NewCBCEncrypter(c.block, make([]byte, aes.BlockSize))
}

// Encrypt enciphers the single block src[:16] into dst[:16] with no
// chaining.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.block.Encrypt(dst, src)
}
