package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortcheck/internal/modulus"
)

func TestSortCode(t *testing.T) {
	t.Run("dashed form", func(t *testing.T) {
		got, err := SortCode("18-00-02")
		require.NoError(t, err)
		assert.Equal(t, "180002", got)
	})

	t.Run("spaced form", func(t *testing.T) {
		got, err := SortCode("18 00 02")
		require.NoError(t, err)
		assert.Equal(t, "180002", got)
	})

	t.Run("already clean", func(t *testing.T) {
		got, err := SortCode("871427")
		require.NoError(t, err)
		assert.Equal(t, "871427", got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := SortCode("")
		assert.ErrorIs(t, err, modulus.ErrMissingInput)
	})

	t.Run("non-numeric after stripping", func(t *testing.T) {
		_, err := SortCode("ab3456")
		assert.ErrorIs(t, err, modulus.ErrInvalidFormat)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := SortCode("12-34-5")
		assert.ErrorIs(t, err, modulus.ErrInvalidFormat)
	})
}

func TestPair(t *testing.T) {
	t.Run("published example pair", func(t *testing.T) {
		sortCode, account, err := Pair("18-00-02", "00000190")
		require.NoError(t, err)
		assert.Equal(t, "180002", sortCode)
		assert.Equal(t, "00000190", account)
	})

	t.Run("six digit account left padded", func(t *testing.T) {
		_, account, err := Pair("180002", "000190")
		require.NoError(t, err)
		assert.Equal(t, "00000190", account)
	})

	t.Run("seven digit account left padded", func(t *testing.T) {
		_, account, err := Pair("180002", "0000190")
		require.NoError(t, err)
		assert.Equal(t, "00000190", account)
	})

	t.Run("nine digit account reshapes the sort code", func(t *testing.T) {
		sortCode, account, err := Pair("180002", "123456789")
		require.NoError(t, err)
		assert.Equal(t, "180009", sortCode)
		assert.Equal(t, "12345678", account)
	})

	t.Run("ten digit dashed account keeps the eight digit run", func(t *testing.T) {
		_, account, err := Pair("180002", "12345678-90")
		require.NoError(t, err)
		assert.Equal(t, "12345678", account)
	})

	t.Run("ten digit undashed account keeps the first eight", func(t *testing.T) {
		_, account, err := Pair("180002", "1234567890")
		require.NoError(t, err)
		assert.Equal(t, "12345678", account)
	})

	t.Run("internal whitespace stripped", func(t *testing.T) {
		_, account, err := Pair("180002", "0000 0190")
		require.NoError(t, err)
		assert.Equal(t, "00000190", account)
	})

	t.Run("missing account", func(t *testing.T) {
		_, _, err := Pair("180002", "")
		assert.ErrorIs(t, err, modulus.ErrMissingInput)
	})

	t.Run("non-numeric account", func(t *testing.T) {
		_, _, err := Pair("180002", "1234x678")
		assert.ErrorIs(t, err, modulus.ErrInvalidFormat)
	})

	t.Run("unsupported length", func(t *testing.T) {
		_, _, err := Pair("180002", "12345")
		assert.ErrorIs(t, err, modulus.ErrInvalidFormat)
	})
}
