package collate

import (
	"fmt"

	"go.uber.org/zap"

	"examcollate/internal/pagemap"
)

// QuestionCollator assembles the per-main-question output documents.
type QuestionCollator struct {
	comp       *Compositor
	markScheme Source
	log        *zap.SugaredLogger
}

func NewQuestionCollator(comp *Compositor, markScheme Source, log *zap.SugaredLogger) *QuestionCollator {
	return &QuestionCollator{comp: comp, markScheme: markScheme, log: log}
}

// Collate produces the composite pages for one main question: for each
// student in the given (already deterministic) order, for each sub-question
// record in row order, one page per question page in the record's range. The
// record's full mark-scheme set appears on every one of its pages. Students
// whose document did not cover a record's range are skipped for that record
// with a warning.
func (qc *QuestionCollator) Collate(main string, records []pagemap.Record, students []Student, ix *Index) Document {
	var doc Document
	for _, s := range students {
		for _, rec := range records {
			pages, ok := ix.Slice(s.Name, rec.ID)
			if !ok {
				qc.log.Warnw("skipping question for student",
					"student", s.Name, "question", rec.ID)
				continue
			}
			markScheme := make([]PageRef, len(rec.MarkSchemePages))
			for i, p := range rec.MarkSchemePages {
				markScheme[i] = PageRef{Source: qc.markScheme, Page: p}
			}
			for i, p := range pages {
				overlay := fmt.Sprintf("%s Question %s (page %d/%d)", s.Name, main, i+1, len(pages))
				doc.Pages = append(doc.Pages, qc.comp.ComposeQuestionPage(
					PageRef{Source: s.Doc, Page: p}, markScheme, overlay))
			}
		}
	}
	return doc
}
