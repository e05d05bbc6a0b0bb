package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Q1", SafeName("Q1"))
	assert.Equal(t, "Extra_space", SafeName("Extra_space"))
	assert.Equal(t, "Q2_i_", SafeName(`Q2/i"`))
	assert.Equal(t, "document", SafeName("  "))
	assert.Equal(t, "document", SafeName("..."))
}

func TestWriteFile(t *testing.T) {
	t.Run("writes and overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Q1.pdf")

		require.NoError(t, WriteFile(path, []byte("first")))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))

		require.NoError(t, WriteFile(path, []byte("second")))
		data, err = os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteFile(filepath.Join(dir, "Q1.pdf"), []byte("data")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Q1.pdf", entries[0].Name())
	})
}
