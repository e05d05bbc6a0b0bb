// Package inputs resolves the standardized input directory tree into
// concrete file paths. The collation engine itself never globs the
// filesystem; it receives the resolved handles.
package inputs

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Subdirectories of the input tree.
const (
	MarkSchemeDir       = "mark-scheme"
	QuestionPaperDir    = "question-paper"
	PageMapDir          = "page-mapping"
	StudentResponsesDir = "student-responses"
)

// EmptyInputError reports a required input that could not be found.
type EmptyInputError struct {
	What string
	Dir  string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no %s found in %s", e.What, e.Dir)
}

// Set holds the resolved input files for one collation run.
type Set struct {
	MarkScheme    string
	QuestionPaper string
	PageMap       string
	Students      []string
}

// Discover resolves the input tree under dir: one PDF each for the mark
// scheme and question paper, one CSV page map, and every student response
// PDF. When a directory holds several candidates the lexicographically first
// is used and the choice is logged so a stray extra file is visible. Student
// paths come back sorted; the run's output ordering is decided later by
// display name.
func Discover(dir string, log *zap.SugaredLogger) (*Set, error) {
	markScheme, err := one(filepath.Join(dir, MarkSchemeDir), "*.pdf", "mark scheme PDF", log)
	if err != nil {
		return nil, err
	}
	questionPaper, err := one(filepath.Join(dir, QuestionPaperDir), "*.pdf", "question paper PDF", log)
	if err != nil {
		return nil, err
	}
	pageMap, err := one(filepath.Join(dir, PageMapDir), "*.csv", "page mapping CSV", log)
	if err != nil {
		return nil, err
	}

	studentDir := filepath.Join(dir, StudentResponsesDir)
	students, err := filepath.Glob(filepath.Join(studentDir, "*.pdf"))
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, &EmptyInputError{What: "student response PDFs", Dir: studentDir}
	}
	sort.Strings(students)

	return &Set{
		MarkScheme:    markScheme,
		QuestionPaper: questionPaper,
		PageMap:       pageMap,
		Students:      students,
	}, nil
}

// StudentName derives a student's display name from their response file:
// the basename without its extension.
func StudentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func one(dir, pattern, what string, log *zap.SugaredLogger) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", &EmptyInputError{What: what, Dir: dir}
	}
	sort.Strings(matches)
	if len(matches) > 1 {
		log.Infow("several candidate files found, using first",
			"what", what, "dir", dir, "chosen", matches[0], "candidates", len(matches))
	}
	return matches[0], nil
}
