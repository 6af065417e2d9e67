package subtle

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFFX(t *testing.T) *FFX {
	t.Helper()
	f, err := NewFFX(make([]byte, 16), nil, 1024, 0, 0, 10, "")
	require.NoError(t, err)
	return f
}

func TestFFXCiphReuse(t *testing.T) {
	// AES-128 with an all-zero key applied to an all-zero block
	exp := []byte{
		102, 233, 75, 212, 239, 138, 44, 59,
		136, 76, 250, 89, 202, 52, 43, 46,
	}

	f := newTestFFX(t)

	src := make([]byte, 16)
	d1 := make([]byte, 16)
	d2 := make([]byte, 16)

	require.NoError(t, f.Ciph(d1, src))
	require.NoError(t, f.Ciph(d2, src))

	// no chain state carries over between calls
	assert.Equal(t, d1, d2)
	assert.Equal(t, exp, d1)
}

func TestFFXPRFAlignment(t *testing.T) {
	f := newTestFFX(t)

	dst := make([]byte, 16)
	err := f.PRF(dst, make([]byte, 20))
	assert.ErrorIs(t, err, ErrInvalidBlockAlignment)

	assert.NoError(t, f.PRF(dst, make([]byte, 48)))
}

func TestFFXBignumConversion(t *testing.T) {
	f := newTestFFX(t)

	const s = "9037450980398204379409345039453045723049"
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)

	chars, err := f.StrMRadix(n, 0)
	require.NoError(t, err)
	assert.Equal(t, s, string(chars))

	r, err := f.NumRadix(chars)
	require.NoError(t, err)
	assert.Zero(t, n.Cmp(r))
}

func TestFFXStrMRadixPadding(t *testing.T) {
	f := newTestFFX(t)

	chars, err := f.StrMRadix(big.NewInt(5), 4)
	require.NoError(t, err)
	assert.Equal(t, "0005", string(chars))

	chars, err = f.StrMRadix(big.NewInt(0), 3)
	require.NoError(t, err)
	assert.Equal(t, "000", string(chars))
}

func TestFFXNumRadixRejectsForeignLetter(t *testing.T) {
	f := newTestFFX(t)

	_, err := f.NumRadix([]rune("12x4"))
	assert.ErrorIs(t, err, ErrNotInAlphabet)
}

func TestFFXTextLengthWindow(t *testing.T) {
	f := newTestFFX(t)

	// radix 10 gives mintxt = 6
	assert.ErrorIs(t, f.ValidateTextLength(5), ErrInvalidTextLength)
	assert.NoError(t, f.ValidateTextLength(6))
	assert.NoError(t, f.ValidateTextLength(1024))
	assert.ErrorIs(t, f.ValidateTextLength(1025), ErrInvalidTextLength)
}

func TestFFXTweakLengthMessages(t *testing.T) {
	fixed, err := NewFFX(make([]byte, 16), nil, 1024, 7, 7, 10, "")
	require.NoError(t, err)
	err = fixed.ValidateTweakLength(6)
	assert.ErrorIs(t, err, ErrInvalidTweakLength)
	assert.Contains(t, err.Error(), "exactly 7")

	ranged, err := NewFFX(make([]byte, 16), nil, 1024, 2, 5, 10, "")
	require.NoError(t, err)
	err = ranged.ValidateTweakLength(6)
	assert.ErrorIs(t, err, ErrInvalidTweakLength)
	assert.Contains(t, err.Error(), "between 2 and 5")

	// maxtwk == 0 leaves the length unbounded above
	open := newTestFFX(t)
	assert.NoError(t, open.ValidateTweakLength(0))
	assert.NoError(t, open.ValidateTweakLength(1000))
}

func TestFFXDefaultTweak(t *testing.T) {
	def := []byte{1, 2, 3}
	f, err := NewFFX(make([]byte, 16), def, 1024, 0, 0, 10, "")
	require.NoError(t, err)

	assert.Equal(t, def, f.Tweak(nil))
	assert.Equal(t, []byte{9}, f.Tweak([]byte{9}))
}

func TestFFXConstructionErrors(t *testing.T) {
	key := make([]byte, 16)

	_, err := NewFFX(key, nil, 1024, 0, 0, 1, "")
	assert.ErrorIs(t, err, ErrInvalidRadix)

	_, err = NewFFX(make([]byte, 15), nil, 1024, 0, 0, 10, "")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	// mintxt for radix 10 is 6, above this maxtxt
	_, err = NewFFX(key, nil, 3, 0, 0, 10, "")
	assert.ErrorIs(t, err, ErrInvalidTextLength)

	_, err = NewFFX(key, nil, 1024, 3, 2, 10, "")
	assert.ErrorIs(t, err, ErrInvalidTweakLength)

	// a default tweak must satisfy the window up front
	_, err = NewFFX(key, make([]byte, 8), 1024, 7, 7, 10, "")
	assert.ErrorIs(t, err, ErrInvalidTweakLength)
}
