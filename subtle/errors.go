package subtle

import "errors"

// Errors returned by the low-level FF1/FF3-1 primitives. Raise sites wrap
// these with fmt.Errorf and %w so callers can discriminate with errors.Is
// while still getting a human-readable reason.
var (
	// ErrInvalidKeyLength is returned when the key is not 16, 24, or 32 bytes.
	ErrInvalidKeyLength = errors.New("ffx: invalid key length")

	// ErrInvalidRadix is returned when the radix is less than 2.
	ErrInvalidRadix = errors.New("ffx: invalid radix")

	// ErrAlphabetTooSmall is returned when the alphabet has fewer unique
	// letters than the requested radix.
	ErrAlphabetTooSmall = errors.New("ffx: not enough letters in alphabet")

	// ErrDuplicateLetter is returned when the alphabet repeats a letter.
	ErrDuplicateLetter = errors.New("ffx: duplicate letter(s) in alphabet")

	// ErrInvalidTweakLength is returned when a tweak falls outside the
	// mode's tweak length window.
	ErrInvalidTweakLength = errors.New("ffx: invalid tweak length")

	// ErrInvalidTextLength is returned when the input text falls outside
	// the mode's text length window.
	ErrInvalidTextLength = errors.New("ffx: invalid text length")

	// ErrNotInAlphabet is returned when the input text contains a letter
	// that is not part of the alphabet.
	ErrNotInAlphabet = errors.New("ffx: letter not in alphabet")

	// ErrOutOfRange is returned when a numeral does not map to a position
	// in the alphabet.
	ErrOutOfRange = errors.New("ffx: position out of range")

	// ErrInvalidBlockAlignment is returned when a PRF input is not a
	// multiple of the cipher block size.
	ErrInvalidBlockAlignment = errors.New("ffx: input is not a multiple of the block size")
)
