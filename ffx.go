// Package ffx implements Format-Preserving Encryption (FPE) in the FF1
// and FF3-1 modes of NIST SP 800-38G, as amended by draft SP 800-38G
// rev. 1.
//
// Format-preserving encryption maps a string over some alphabet to a
// ciphertext string of the same length over the same alphabet: a 16-digit
// card number encrypts to another 16-digit number, a base-36 serial to
// another base-36 serial. The underlying block cipher is AES; the key
// length (16, 24, or 32 bytes) selects AES-128, AES-192, or AES-256.
//
// If no alphabet is supplied, a default alphabet is used, consisting of
// the digits 0 through 9, followed by the letters a through z, and then
// the letters A through Z. The radix selects how many of its leading
// characters are in play, up to 62.
//
// Contexts are immutable after construction and safe for concurrent use
// from multiple goroutines without external synchronization.
//
// Example usage:
//
//	ff31, err := ffx.NewFF31(key, tweak, 10, "")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ct, err := ff31.Encrypt("6520935496", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// ct is another 10-digit string, e.g. "4716569208"
//
//	pt, err := ff31.Decrypt(ct, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// pt == "6520935496"
//
// The package also provides free functions (EncryptFF1, DecryptFF31, ...)
// for callers who do not want to manage a context, a Tokenizer that
// carries punctuation through encryption untouched, and Tink keyset
// integration in the tinkfpe subpackage.
package ffx

import "github.com/vdparikh/ffx/subtle"

// DefaultAlphabet is the alphabet used when none is supplied. Ordering is
// significant: a letter's numeral value is its position in this string.
const DefaultAlphabet = subtle.DefaultAlphabet

// FPE is the primitive interface implemented by the FF1 and FF31
// contexts. FPE is deterministic: the same key, tweak, and plaintext
// always produce the same ciphertext.
type FPE interface {
	// Encrypt enciphers plaintext into a string of the same length over
	// the same alphabet. A non-nil tweak overrides the context default.
	Encrypt(plaintext string, tweak []byte) (string, error)

	// Decrypt is the inverse of Encrypt. The tweak must match the one
	// used to encrypt.
	Decrypt(ciphertext string, tweak []byte) (string, error)
}
