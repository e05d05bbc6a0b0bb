package inputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func TestDiscover(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Run("resolves the full tree", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, MarkSchemeDir, "ms.pdf"))
		touch(t, filepath.Join(dir, QuestionPaperDir, "paper.pdf"))
		touch(t, filepath.Join(dir, PageMapDir, "map.csv"))
		touch(t, filepath.Join(dir, StudentResponsesDir, "bob.pdf"))
		touch(t, filepath.Join(dir, StudentResponsesDir, "alice.pdf"))

		set, err := Discover(dir, log)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, MarkSchemeDir, "ms.pdf"), set.MarkScheme)
		assert.Equal(t, filepath.Join(dir, QuestionPaperDir, "paper.pdf"), set.QuestionPaper)
		assert.Equal(t, filepath.Join(dir, PageMapDir, "map.csv"), set.PageMap)
		assert.Equal(t, []string{
			filepath.Join(dir, StudentResponsesDir, "alice.pdf"),
			filepath.Join(dir, StudentResponsesDir, "bob.pdf"),
		}, set.Students)
	})

	t.Run("missing mark scheme", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, QuestionPaperDir, "paper.pdf"))
		touch(t, filepath.Join(dir, PageMapDir, "map.csv"))
		touch(t, filepath.Join(dir, StudentResponsesDir, "alice.pdf"))

		_, err := Discover(dir, log)
		var eie *EmptyInputError
		require.ErrorAs(t, err, &eie)
		assert.Equal(t, "mark scheme PDF", eie.What)
	})

	t.Run("no students", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, MarkSchemeDir, "ms.pdf"))
		touch(t, filepath.Join(dir, QuestionPaperDir, "paper.pdf"))
		touch(t, filepath.Join(dir, PageMapDir, "map.csv"))

		_, err := Discover(dir, log)
		var eie *EmptyInputError
		require.ErrorAs(t, err, &eie)
		assert.Equal(t, "student response PDFs", eie.What)
	})

	t.Run("several candidates use the first sorted and log the choice", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, MarkSchemeDir, "b.pdf"))
		touch(t, filepath.Join(dir, MarkSchemeDir, "a.pdf"))
		touch(t, filepath.Join(dir, QuestionPaperDir, "paper.pdf"))
		touch(t, filepath.Join(dir, PageMapDir, "map.csv"))
		touch(t, filepath.Join(dir, StudentResponsesDir, "alice.pdf"))

		core, logs := observer.New(zap.InfoLevel)
		observed := zap.New(core).Sugar()

		set, err := Discover(dir, observed)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, MarkSchemeDir, "a.pdf"), set.MarkScheme)

		entries := logs.FilterMessage("several candidate files found, using first").All()
		require.Len(t, entries, 1)
		ctx := entries[0].ContextMap()
		assert.Equal(t, "mark scheme PDF", ctx["what"])
		assert.Equal(t, filepath.Join(dir, MarkSchemeDir, "a.pdf"), ctx["chosen"])
	})
}

func TestStudentName(t *testing.T) {
	assert.Equal(t, "Alice Smith", StudentName("/inputs/student-responses/Alice Smith.pdf"))
	assert.Equal(t, "bob", StudentName("bob.pdf"))
}
