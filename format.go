package ffx

import "fmt"

// Tokenizer applies format-preserving encryption to values that mix data
// characters with punctuation, e.g. SSNs (123-45-6789) or card numbers
// (4532-1234-5678-9010). Characters belonging to the alphabet are
// encrypted; everything else (hyphens, dots, spaces, @ signs, ...) passes
// through in its original position.
//
// The alphabet must be the one the wrapped FPE context was built with,
// and the number of data characters in each value must fall within the
// context's length window.
type Tokenizer struct {
	fpe     FPE
	letters map[rune]struct{}
}

// NewTokenizer wraps fpe, treating the characters of alphabet as data.
// An empty alphabet selects the default.
func NewTokenizer(fpe FPE, alphabet string) *Tokenizer {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	letters := make(map[rune]struct{})
	for _, c := range alphabet {
		letters[c] = struct{}{}
	}
	return &Tokenizer{fpe: fpe, letters: letters}
}

// Tokenize encrypts the data characters of s and leaves the rest in
// place. The result has the same shape as the input.
func (t *Tokenizer) Tokenize(s string, tweak []byte) (string, error) {
	return t.apply(s, tweak, t.fpe.Encrypt)
}

// Detokenize inverts Tokenize. The tweak must match the one used to
// tokenize.
func (t *Tokenizer) Detokenize(s string, tweak []byte) (string, error) {
	return t.apply(s, tweak, t.fpe.Decrypt)
}

func (t *Tokenizer) apply(s string, tweak []byte, op func(string, []byte) (string, error)) (string, error) {
	runes := []rune(s)

	data := make([]rune, 0, len(runes))
	for _, c := range runes {
		if _, ok := t.letters[c]; ok {
			data = append(data, c)
		}
	}

	out, err := op(string(data), tweak)
	if err != nil {
		return "", err
	}

	// weave the transformed data back through the punctuation
	outRunes := []rune(out)
	if len(outRunes) != len(data) {
		return "", fmt.Errorf("ffx: length changed from %d to %d", len(data), len(outRunes))
	}
	j := 0
	for i, c := range runes {
		if _, ok := t.letters[c]; ok {
			runes[i] = outRunes[j]
			j++
		}
	}
	return string(runes), nil
}
