package modulus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDigits(t *testing.T) {
	d, err := ParseDigits("090126", 6)
	require.NoError(t, err)
	assert.Equal(t, Digits{0, 9, 0, 1, 2, 6}, d)

	_, err = ParseDigits("09012", 6)
	assert.Error(t, err)

	_, err = ParseDigits("09x126", 6)
	assert.Error(t, err)
}

func TestDigitsValueSemantics(t *testing.T) {
	orig, err := ParseDigits("12345678", 8)
	require.NoError(t, err)

	clone := orig.Clone()
	clone[0] = 9
	assert.Equal(t, 1, orig[0], "clone must not alias the original")

	withed := orig.With(7, 0)
	assert.Equal(t, 8, orig[7])
	assert.Equal(t, 0, withed[7])
}

func TestDigitsOverwrite(t *testing.T) {
	d := make(Digits, 6)

	over := d.Overwrite("309634")
	assert.Equal(t, Digits{3, 0, 9, 6, 3, 4}, over)
	assert.Equal(t, make(Digits, 6), d, "overwrite returns a fresh vector")

	// applying the same overwrite twice yields the same vector
	assert.Equal(t, over, over.Overwrite("309634"))
}

func TestDigitsOverwriteList(t *testing.T) {
	d := make(Digits, 8)
	over := d.OverwriteList("6,4,8,7,10,9,3,1")
	assert.Equal(t, Digits{6, 4, 8, 7, 10, 9, 3, 1}, over)

	// wide values survive the round trip through String
	assert.Equal(t, "6,4,8,7,10,9,3,1", over.String())
}

func TestDigitsString(t *testing.T) {
	assert.Equal(t, "001253", mustDigits("001253").String())
	assert.Equal(t, "0,0,8,7,10,9,3,1", mustList("0,0,8,7,10,9,3,1").String())
}
