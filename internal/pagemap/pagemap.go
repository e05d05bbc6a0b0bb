// Package pagemap loads the exam page-mapping table: which pages of the
// question paper and the mark scheme belong to each (sub-)question.
package pagemap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Column names required in the page-mapping table.
const (
	ColQuestion        = "Q"
	ColTopic           = "Topic"
	ColQuestionPages   = "Question Page Map"
	ColMarkSchemePages = "Mark scheme page map"
	ColMaxMarks        = "Max marks"
)

var requiredColumns = []string{
	ColQuestion,
	ColTopic,
	ColQuestionPages,
	ColMarkSchemePages,
	ColMaxMarks,
}

// MissingColumnError reports a required column absent from the table header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("page map is missing column %q", e.Column)
}

// InvalidQuestionIdError reports a question id without a leading digit run,
// which makes the record impossible to group under a main question.
type InvalidQuestionIdError struct {
	ID string
}

func (e *InvalidQuestionIdError) Error() string {
	return fmt.Sprintf("question id %q has no leading question number", e.ID)
}

// Record is one row of the page map. Immutable once loaded.
type Record struct {
	ID              string
	MainQuestion    string
	Topic           string
	QuestionPages   []int
	MarkSchemePages []int
	MaxMarks        int
}

// Table is the loaded page map, in row order. Row order is the output order
// within a main-question group.
type Table struct {
	records []Record
}

// Group is one main question with its sub-question records in row order.
type Group struct {
	Main    string
	Records []Record
}

var leadingDigits = regexp.MustCompile(`^\d+`)

// Load builds a Table from already-read tabular rows, parsing the two
// page-range columns. Any structural problem (missing column, malformed
// range, ungroupable id) fails the whole load: a bad map invalidates every
// output built from it.
func Load(rows Rows) (*Table, error) {
	cols := map[string]int{}
	for i, name := range rows.Header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &MissingColumnError{Column: name}
		}
	}

	t := &Table{records: make([]Record, 0, len(rows.Cells))}
	for i, cells := range rows.Cells {
		if len(cells) < len(rows.Header) {
			return nil, fmt.Errorf("page map row %d: expected %d columns, got %d",
				i+1, len(rows.Header), len(cells))
		}
		rec, err := loadRecord(cols, cells)
		if err != nil {
			return nil, fmt.Errorf("page map row %d: %w", i+1, err)
		}
		t.records = append(t.records, rec)
	}
	return t, nil
}

func loadRecord(cols map[string]int, cells []string) (Record, error) {
	cell := func(name string) string {
		return strings.TrimSpace(cells[cols[name]])
	}

	id := cell(ColQuestion)
	main := leadingDigits.FindString(id)
	if main == "" {
		return Record{}, &InvalidQuestionIdError{ID: id}
	}

	questionPages, err := ParseRange(cell(ColQuestionPages))
	if err != nil {
		return Record{}, err
	}
	markSchemePages, err := ParseRange(cell(ColMarkSchemePages))
	if err != nil {
		return Record{}, err
	}
	maxMarks, err := strconv.Atoi(cell(ColMaxMarks))
	if err != nil {
		return Record{}, fmt.Errorf("max marks %q is not a number", cell(ColMaxMarks))
	}

	return Record{
		ID:              id,
		MainQuestion:    main,
		Topic:           cell(ColTopic),
		QuestionPages:   questionPages,
		MarkSchemePages: markSchemePages,
		MaxMarks:        maxMarks,
	}, nil
}

// Records returns all records in row order.
func (t *Table) Records() []Record {
	return t.records
}

// GroupByMainQuestion groups records by the leading digits of their id.
// Group order is first-seen row order, within-group order is row order.
func (t *Table) GroupByMainQuestion() []Group {
	var groups []Group
	byMain := map[string]int{}
	for _, rec := range t.records {
		idx, ok := byMain[rec.MainQuestion]
		if !ok {
			idx = len(groups)
			byMain[rec.MainQuestion] = idx
			groups = append(groups, Group{Main: rec.MainQuestion})
		}
		groups[idx].Records = append(groups[idx].Records, rec)
	}
	return groups
}

// MaxQuestionPage returns the highest question-paper page referenced by any
// record. Student pages beyond it are extra-space pages.
func (t *Table) MaxQuestionPage() int {
	max := 0
	for _, rec := range t.records {
		for _, p := range rec.QuestionPages {
			if p > max {
				max = p
			}
		}
	}
	return max
}

// MaxMarkSchemePage returns the highest mark-scheme page referenced by any
// record.
func (t *Table) MaxMarkSchemePage() int {
	max := 0
	for _, rec := range t.records {
		for _, p := range rec.MarkSchemePages {
			if p > max {
				max = p
			}
		}
	}
	return max
}
