package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	token := EncodeToken("0191d4f2-aaaa-7bbb-8ccc-123456789abc")
	assert.NotEmpty(t, token, "Token should not be empty")

	id, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, "0191d4f2-aaaa-7bbb-8ccc-123456789abc", id)

	// Ids may themselves contain the separator.
	id, err = DecodeToken(EncodeToken("a|b"))
	assert.NoError(t, err)
	assert.Equal(t, "a|b", id)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	_, err = DecodeToken("bm9zZXBhcmF0b3I=") // "noseparator"
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeToken(EncodeToken(""))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-5))
	assert.Equal(t, 7, ClampLimit(7))
	assert.Equal(t, MaxLimit, ClampLimit(MaxLimit+1))
}

func TestPage(t *testing.T) {
	items := make([]string, 5)
	for i := range items {
		items[i] = fmt.Sprintf("t%d", i)
	}
	id := func(s string) string { return s }

	first, next, err := Page(items, id, 2, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "t1"}, first)
	require.NotEmpty(t, next)

	second, next, err := Page(items, id, 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t3"}, second)

	last, next, err := Page(items, id, 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"t4"}, last)
	assert.Empty(t, next, "no token after the final page")

	_, _, err = Page(items, id, 2, EncodeToken("gone"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPage_ExactFit(t *testing.T) {
	items := []string{"a", "b"}
	page, next, err := Page(items, func(s string) string { return s }, 2, "")
	require.NoError(t, err)
	assert.Equal(t, items, page)
	assert.Empty(t, next)
}
