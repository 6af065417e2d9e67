package ffx

import "github.com/vdparikh/ffx/subtle"

// Errors returned by the library, re-exported from the subtle package so
// callers of the high-level API can discriminate with errors.Is without
// importing the primitives.
var (
	ErrInvalidKeyLength      = subtle.ErrInvalidKeyLength
	ErrInvalidRadix          = subtle.ErrInvalidRadix
	ErrAlphabetTooSmall      = subtle.ErrAlphabetTooSmall
	ErrDuplicateLetter       = subtle.ErrDuplicateLetter
	ErrInvalidTweakLength    = subtle.ErrInvalidTweakLength
	ErrInvalidTextLength     = subtle.ErrInvalidTextLength
	ErrNotInAlphabet         = subtle.ErrNotInAlphabet
	ErrOutOfRange            = subtle.ErrOutOfRange
	ErrInvalidBlockAlignment = subtle.ErrInvalidBlockAlignment
)
