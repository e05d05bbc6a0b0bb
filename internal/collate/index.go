package collate

import (
	"fmt"
	"sort"
	"strings"

	"examcollate/internal/pagemap"
)

// Student is one response document with its display name (the response file
// basename).
type Student struct {
	Name string
	Doc  Source
}

// SortStudents orders students by display name, case-insensitively. Output
// generation iterates in this order so results do not depend on directory
// listing order.
func SortStudents(students []Student) {
	sort.SliceStable(students, func(i, j int) bool {
		return strings.ToLower(students[i].Name) < strings.ToLower(students[j].Name)
	})
}

// InsufficientPagesError reports a student document too short to cover a
// mapped question range. It indicates a missing or incomplete scan and must
// be surfaced to the operator, never silently truncated.
type InsufficientPagesError struct {
	Student  string
	Question string
	Need     int
	Have     int
}

func (e *InsufficientPagesError) Error() string {
	return fmt.Sprintf("student %q: question %s needs page %d but the document has %d pages",
		e.Student, e.Question, e.Need, e.Have)
}

// Index maps each (student, question) pair to that student's response pages
// and knows where each student's extra-space pages begin.
type Index struct {
	maxQuestionPage int
	slices          map[string]map[string][]int
	issues          []*InsufficientPagesError
}

// BuildIndex computes every student's question slices by positional
// correspondence: student documents are assumed laid out in the same page
// order as the question paper, so a record's question pages are the same
// page numbers in the student document. Ranges that run past the end of a
// student's document are recorded as issues and left out of the index;
// the student's remaining questions are unaffected.
func BuildIndex(table *pagemap.Table, students []Student) *Index {
	ix := &Index{
		maxQuestionPage: table.MaxQuestionPage(),
		slices:          make(map[string]map[string][]int, len(students)),
	}
	for _, s := range students {
		byQuestion := make(map[string][]int)
		for _, rec := range table.Records() {
			need := rec.QuestionPages[len(rec.QuestionPages)-1]
			if need > s.Doc.PageCount() {
				ix.issues = append(ix.issues, &InsufficientPagesError{
					Student:  s.Name,
					Question: rec.ID,
					Need:     need,
					Have:     s.Doc.PageCount(),
				})
				continue
			}
			byQuestion[rec.ID] = rec.QuestionPages
		}
		ix.slices[s.Name] = byQuestion
	}
	return ix
}

// Slice returns the student's response pages for a question id. ok is false
// when the student's document did not cover the question's range.
func (ix *Index) Slice(student, questionID string) ([]int, bool) {
	pages, ok := ix.slices[student][questionID]
	return pages, ok
}

// ExtraPages returns the student's pages after the last mapped question
// page, in document order. An empty result is normal, not an error.
func (ix *Index) ExtraPages(s Student) []int {
	var pages []int
	for p := ix.maxQuestionPage + 1; p <= s.Doc.PageCount(); p++ {
		pages = append(pages, p)
	}
	return pages
}

// Issues returns every insufficient-pages finding, in student build order.
func (ix *Index) Issues() []*InsufficientPagesError {
	return ix.issues
}

// MaxQuestionPage returns the highest question-paper page any record maps.
func (ix *Index) MaxQuestionPage() int {
	return ix.maxQuestionPage
}
