package collate

import (
	"fmt"

	"go.uber.org/zap"
)

// ExtraSpaceCollator pairs students' leftover pages two-up.
type ExtraSpaceCollator struct {
	comp *Compositor
	log  *zap.SugaredLogger
}

func NewExtraSpaceCollator(comp *Compositor, log *zap.SugaredLogger) *ExtraSpaceCollator {
	return &ExtraSpaceCollator{comp: comp, log: log}
}

// Collate flattens every student's extra pages into one sequence, preserving
// student order and per-student page order, and pairs them two per composite
// page. An odd final page gets a blank, unlabeled right half. An empty
// document means no student had extra pages.
func (ec *ExtraSpaceCollator) Collate(students []Student, ix *Index) Document {
	type slot struct {
		name string
		ref  PageRef
	}
	var flat []slot
	for _, s := range students {
		for _, p := range ix.ExtraPages(s) {
			flat = append(flat, slot{name: s.Name, ref: PageRef{Source: s.Doc, Page: p}})
		}
	}
	ec.log.Debugw("collected extra space pages", "count", len(flat))

	var doc Document
	for i := 0; i < len(flat); i += 2 {
		left := flat[i]
		leftLabel := fmt.Sprintf("%s Extra Space", left.name)
		if i+1 < len(flat) {
			right := flat[i+1]
			rightLabel := fmt.Sprintf("%s Extra Space", right.name)
			doc.Pages = append(doc.Pages, ec.comp.ComposeExtraSpacePage(left.ref, &right.ref, leftLabel, rightLabel))
		} else {
			doc.Pages = append(doc.Pages, ec.comp.ComposeExtraSpacePage(left.ref, nil, leftLabel, ""))
		}
	}
	return doc
}
