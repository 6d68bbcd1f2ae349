package modulus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldProduct(t *testing.T) {
	assert.Equal(t, 0, foldProduct(0))
	assert.Equal(t, 9, foldProduct(9))
	assert.Equal(t, 1, foldProduct(10))
	assert.Equal(t, 9, foldProduct(18))
	assert.Equal(t, 9, foldProduct(90))
}

func TestStandardModulus(t *testing.T) {
	rule := Rule{
		Method: Mod11, Exception: 0,
		SortWeights: mustDigits("000000"),
		AcctWeights: mustDigits("87654321"),
	}

	t.Run("remainder zero passes", func(t *testing.T) {
		entry := checksum(rule, mustDigits("012345"), mustDigits("07924402"))
		assert.Equal(t, TraceEntry{Exception: 0, Method: Mod11, Remainder: 0, Total: 143, Result: ResultPass}, entry)
	})

	t.Run("non-zero remainder fails", func(t *testing.T) {
		entry := checksum(rule, mustDigits("012345"), mustDigits("90786666"))
		assert.Equal(t, 5, entry.Remainder)
		assert.Equal(t, 214, entry.Total)
		assert.Equal(t, ResultFail, entry.Result)
	})
}

func TestStandardModulusException1Bias(t *testing.T) {
	rule := Rule{
		Method: Mod10, Exception: 1,
		SortWeights: mustDigits("000000"),
		AcctWeights: mustDigits("00000001"),
	}
	// weighted sum 3, plus the constant 27 bias, lands on the divisor
	entry := checksum(rule, mustDigits("000000"), mustDigits("00000003"))
	assert.Equal(t, 30, entry.Total)
	assert.Equal(t, ResultPass, entry.Result)
}

func TestStandardModulusException4(t *testing.T) {
	rule := Rule{
		Method: Mod11, Exception: 4,
		SortWeights: mustDigits("000000"),
		AcctWeights: mustDigits("00456700"),
	}

	t.Run("remainder equal to gh passes", func(t *testing.T) {
		entry := checksum(rule, mustDigits("134712"), mustDigits("25167800"))
		assert.Equal(t, 0, entry.Remainder)
		assert.Equal(t, ResultPass, entry.Result)
	})

	t.Run("remainder not equal to gh fails", func(t *testing.T) {
		entry := checksum(rule, mustDigits("134712"), mustDigits("83740718"))
		assert.Equal(t, 9, entry.Remainder)
		assert.Equal(t, ResultFail, entry.Result)
	})
}

func TestStandardModulusException5(t *testing.T) {
	rule := Rule{
		Method: Mod11, Exception: 5,
		SortWeights: mustDigits("765432"),
		AcctWeights: mustDigits("76543200"),
	}

	t.Run("remainder zero needs g zero", func(t *testing.T) {
		entry := checksum(rule, mustDigits("938611"), mustDigits("89721106"))
		assert.Equal(t, 0, entry.Remainder)
		assert.Equal(t, ResultPass, entry.Result)
	})

	t.Run("remainder one always fails", func(t *testing.T) {
		entry := checksum(rule, mustDigits("938611"), mustDigits("31138780"))
		assert.Equal(t, 1, entry.Remainder)
		assert.Equal(t, ResultFail, entry.Result)
	})

	t.Run("g must equal eleven minus remainder", func(t *testing.T) {
		entry := checksum(rule, mustDigits("938611"), mustDigits("57340731"))
		assert.Equal(t, 8, entry.Remainder)
		assert.Equal(t, 3, mustDigits("57340731")[6])
		assert.Equal(t, ResultPass, entry.Result)
	})
}

func TestStandardModulusException14(t *testing.T) {
	rule := Rule{
		Method: Mod11, Exception: 14,
		SortWeights: mustDigits("000000"),
		AcctWeights: mustDigits("00000021"),
	}
	sort := mustDigits("180002")

	t.Run("clean remainder passes without retry", func(t *testing.T) {
		entry := checksum(rule, sort, mustDigits("44634786"))
		assert.Equal(t, TraceEntry{Exception: 14, Method: Mod11, Remainder: 0, Total: 22, Result: ResultPass}, entry)
	})

	t.Run("retry with shifted account", func(t *testing.T) {
		entry := checksum(rule, sort, mustDigits("00000190"))
		assert.Equal(t, TraceEntry{Exception: 14, Method: Mod11, Remainder: 0, Total: 11, Result: ResultPass}, entry)
	})

	t.Run("final digit outside 0 1 9 fails without retry", func(t *testing.T) {
		entry := checksum(rule, sort, mustDigits("37576283"))
		assert.Equal(t, 8, entry.Remainder)
		assert.Equal(t, ResultFail, entry.Result)
	})

	t.Run("retry can still fail", func(t *testing.T) {
		entry := checksum(rule, sort, mustDigits("14365370"))
		assert.Equal(t, 2, entry.Remainder)
		assert.Equal(t, 13, entry.Total)
		assert.Equal(t, ResultFail, entry.Result)
	})
}

func TestDoubleAlternate(t *testing.T) {
	rule := Rule{
		Method: DblAl, Exception: 0,
		SortWeights: mustDigits("212121"),
		AcctWeights: mustDigits("21212121"),
	}

	t.Run("folded total divisible by ten passes", func(t *testing.T) {
		entry := checksum(rule, mustDigits("104521"), mustDigits("33401878"))
		assert.Equal(t, TraceEntry{Exception: 0, Method: DblAl, Remainder: 0, Total: 60, Result: ResultPass}, entry)
	})

	t.Run("non-zero remainder fails", func(t *testing.T) {
		entry := checksum(rule, mustDigits("104521"), mustDigits("01759898"))
		assert.Equal(t, 5, entry.Remainder)
		assert.Equal(t, 65, entry.Total)
		assert.Equal(t, ResultFail, entry.Result)
	})
}

func TestDoubleAlternateException5(t *testing.T) {
	rule := Rule{
		Method: DblAl, Exception: 5,
		SortWeights: mustDigits("212121"),
		AcctWeights: mustDigits("21212120"),
	}
	sort := mustDigits("938611")

	t.Run("h equal to ten minus remainder passes", func(t *testing.T) {
		entry := checksum(rule, sort, mustDigits("57340731"))
		assert.Equal(t, 9, entry.Remainder)
		assert.Equal(t, ResultPass, entry.Result)
	})

	t.Run("remainder zero with h zero passes", func(t *testing.T) {
		entry := checksum(rule, sort, mustDigits("72513700"))
		assert.Equal(t, 0, entry.Remainder)
		assert.Equal(t, 50, entry.Total)
		assert.Equal(t, ResultPass, entry.Result)
	})

	t.Run("remainder zero with non-zero h is unresolved", func(t *testing.T) {
		entry := checksum(rule, sort, mustDigits("79919285"))
		assert.Equal(t, 0, entry.Remainder)
		assert.Equal(t, 70, entry.Total)
		assert.Equal(t, ResultUnresolved, entry.Result)
	})
}
