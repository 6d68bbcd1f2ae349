package modulus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableMatch(t *testing.T) {
	table := DefaultTable()

	t.Run("definition order preserved", func(t *testing.T) {
		rules := table.Match(871427)
		require.Len(t, rules, 2)
		assert.Equal(t, 10, rules[0].Exception)
		assert.Equal(t, 11, rules[1].Exception)
	})

	t.Run("uncovered sort code matches nothing", func(t *testing.T) {
		assert.Empty(t, table.Match(999999))
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		assert.Len(t, table.Match(309634), 2)
		assert.Len(t, table.Match(309899), 2)
		assert.Empty(t, table.Match(309900))
	})

	t.Run("matched rules are copies", func(t *testing.T) {
		rules := table.Match(180002)
		require.Len(t, rules, 1)
		rules[0].AcctWeights[7] = 5

		again := table.Match(180002)
		assert.Equal(t, 1, again[0].AcctWeights[7], "mutating a match must not touch the table")
	})
}

func TestNewTableValidation(t *testing.T) {
	base := Rule{
		Start: 100, End: 200, Method: Mod11, Exception: 0,
		SortWeights: make(Digits, 6), AcctWeights: make(Digits, 8),
	}

	t.Run("accepts well formed rules", func(t *testing.T) {
		_, err := NewTable([]Rule{base})
		assert.NoError(t, err)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		r := base
		r.Start, r.End = r.End, r.Start
		_, err := NewTable([]Rule{r})
		assert.Error(t, err)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		r := base
		r.Method = "MOD13"
		_, err := NewTable([]Rule{r})
		assert.Error(t, err)
	})

	t.Run("rejects exception outside 0-14", func(t *testing.T) {
		r := base
		r.Exception = 15
		_, err := NewTable([]Rule{r})
		assert.Error(t, err)
	})

	t.Run("rejects short weight vectors", func(t *testing.T) {
		r := base
		r.AcctWeights = make(Digits, 7)
		_, err := NewTable([]Rule{r})
		assert.Error(t, err)
	})
}

func TestMethodDivisor(t *testing.T) {
	assert.Equal(t, 10, Mod10.Divisor())
	assert.Equal(t, 11, Mod11.Divisor())
	assert.Equal(t, 10, DblAl.Divisor())
}
