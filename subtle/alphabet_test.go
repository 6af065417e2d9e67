package subtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetDefault(t *testing.T) {
	a, err := NewAlphabet("", 0)
	require.NoError(t, err)
	assert.Equal(t, 62, a.Len())

	i, err := a.Ltr('z')
	require.NoError(t, err)
	assert.Equal(t, 35, i)

	c, err := a.Pos(61)
	require.NoError(t, err)
	assert.Equal(t, 'Z', c)
}

func TestAlphabetLimited(t *testing.T) {
	a, err := NewAlphabet("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, a.Len())

	// the letters beyond the limit are not part of the alphabet
	_, err = a.Ltr('a')
	assert.ErrorIs(t, err, ErrNotInAlphabet)
}

func TestAlphabetTooSmall(t *testing.T) {
	_, err := NewAlphabet("123", 10)
	assert.ErrorIs(t, err, ErrAlphabetTooSmall)
}

func TestAlphabetDuplicate(t *testing.T) {
	_, err := NewAlphabet("1123456789", 0)
	assert.ErrorIs(t, err, ErrDuplicateLetter)

	// a duplicate past the limit is never seen
	_, err = NewAlphabet("0123456789900", 10)
	assert.NoError(t, err)
}

func TestAlphabetLtrNotFound(t *testing.T) {
	a, err := NewAlphabet("", 0)
	require.NoError(t, err)

	_, err = a.Ltr('!')
	assert.ErrorIs(t, err, ErrNotInAlphabet)
}

func TestAlphabetPosOutOfRange(t *testing.T) {
	a, err := NewAlphabet("", 0)
	require.NoError(t, err)

	_, err = a.Pos(a.Len() + 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = a.Pos(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAlphabetUnicode(t *testing.T) {
	a, err := NewAlphabet("αβγδεζηθικ", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, a.Len())

	i, err := a.Ltr('β')
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	c, err := a.Pos(9)
	require.NoError(t, err)
	assert.Equal(t, 'κ', c)
}
