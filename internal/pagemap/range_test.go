package pagemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		pages, err := ParseRange("5")
		require.NoError(t, err)
		assert.Equal(t, []int{5}, pages)
	})

	t.Run("hyphenated range is inclusive and gap-free", func(t *testing.T) {
		pages, err := ParseRange("8-9")
		require.NoError(t, err)
		assert.Equal(t, []int{8, 9}, pages)

		pages, err = ParseRange("3-6")
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4, 5, 6}, pages)
	})

	t.Run("degenerate range", func(t *testing.T) {
		pages, err := ParseRange("4-4")
		require.NoError(t, err)
		assert.Equal(t, []int{4}, pages)
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		pages, err := ParseRange("  7 ")
		require.NoError(t, err)
		assert.Equal(t, []int{7}, pages)

		pages, err = ParseRange(" 2 - 3 ")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, pages)
	})

	t.Run("reversed range fails", func(t *testing.T) {
		_, err := ParseRange("9-8")
		var mre *MalformedRangeError
		require.ErrorAs(t, err, &mre)
		assert.Equal(t, "9-8", mre.Token)
	})

	t.Run("empty token fails", func(t *testing.T) {
		_, err := ParseRange("")
		var mre *MalformedRangeError
		require.ErrorAs(t, err, &mre)

		_, err = ParseRange("   ")
		require.ErrorAs(t, err, &mre)
	})

	t.Run("non-numeric token fails", func(t *testing.T) {
		for _, token := range []string{"x", "1a", "4-x", "-3"} {
			_, err := ParseRange(token)
			var mre *MalformedRangeError
			assert.ErrorAs(t, err, &mre, "token %q", token)
		}
	})

	t.Run("zero page fails", func(t *testing.T) {
		_, err := ParseRange("0")
		var mre *MalformedRangeError
		require.ErrorAs(t, err, &mre)
	})
}
