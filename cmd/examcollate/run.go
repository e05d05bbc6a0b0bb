package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"examcollate/internal/collate"
	"examcollate/internal/config"
	"examcollate/internal/inputs"
	"examcollate/internal/pagemap"
	"examcollate/internal/pdf"
)

// run executes one collation pass: discover inputs, load the page map and
// every source document, build the response index, then compose and write
// one document per main question plus the extra-space document. Structural
// page-map problems abort before anything is written; per-student coverage
// problems are collected and reported at the end, even when a later write
// fails.
func run(cfg *config.Config, log *zap.SugaredLogger, inputsDir, outputsDir string) error {
	set, err := inputs.Discover(inputsDir, log)
	if err != nil {
		return err
	}
	log.Infow("discovered inputs",
		"markScheme", set.MarkScheme,
		"questionPaper", set.QuestionPaper,
		"pageMap", set.PageMap,
		"students", len(set.Students))

	rows, err := pagemap.ReadCSVFile(set.PageMap)
	if err != nil {
		return err
	}
	table, err := pagemap.Load(rows)
	if err != nil {
		return err
	}

	markScheme, err := pdf.Open(set.MarkScheme)
	if err != nil {
		return fmt.Errorf("mark scheme: %w", err)
	}
	questionPaper, err := pdf.Open(set.QuestionPaper)
	if err != nil {
		return fmt.Errorf("question paper: %w", err)
	}

	// The map must stay within both master documents, or it is untrustworthy.
	if max := table.MaxQuestionPage(); max > questionPaper.PageCount() {
		return fmt.Errorf("page map references question page %d but the question paper has %d pages",
			max, questionPaper.PageCount())
	}
	if max := table.MaxMarkSchemePage(); max > markScheme.PageCount() {
		return fmt.Errorf("page map references mark scheme page %d but the mark scheme has %d pages",
			max, markScheme.PageCount())
	}

	students := make([]collate.Student, 0, len(set.Students))
	for _, path := range set.Students {
		doc, err := pdf.Open(path)
		if err != nil {
			return fmt.Errorf("student response %s: %w", path, err)
		}
		students = append(students, collate.Student{Name: inputs.StudentName(path), Doc: doc})
	}
	collate.SortStudents(students)

	ix := collate.BuildIndex(table, students)
	defer reportIssues(ix, log)

	if err := os.MkdirAll(outputsDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, doc := range collectDocuments(cfg, table, markScheme, students, ix, log) {
		if err := write(doc, outputsDir, log); err != nil {
			return err
		}
	}
	return nil
}

// collectDocuments composes every output document plan: one per main
// question, in group order, plus the extra-space document. A question whose
// collation produced no pages (every student's scan stopped short of its
// range) is skipped with a warning rather than failing the run; the index
// already carries the per-student findings explaining why.
func collectDocuments(cfg *config.Config, table *pagemap.Table, markScheme collate.Source,
	students []collate.Student, ix *collate.Index, log *zap.SugaredLogger) []collate.Document {

	comp := collate.NewCompositor(cfg.Layout)
	qc := collate.NewQuestionCollator(comp, markScheme, log)

	var docs []collate.Document
	for _, group := range table.GroupByMainQuestion() {
		doc := qc.Collate(group.Main, group.Records, students, ix)
		if len(doc.Pages) == 0 {
			log.Warnw("no student covered question; skipping document", "question", group.Main)
			continue
		}
		doc.Name = cfg.Output.QuestionPrefix + group.Main
		docs = append(docs, doc)
	}

	ec := collate.NewExtraSpaceCollator(comp, log)
	extra := ec.Collate(students, ix)
	if len(extra.Pages) == 0 {
		log.Info("no extra space pages found")
	} else {
		extra.Name = cfg.Output.ExtraSpaceName
		docs = append(docs, extra)
	}
	return docs
}

func reportIssues(ix *collate.Index, log *zap.SugaredLogger) {
	for _, issue := range ix.Issues() {
		log.Warnw("incomplete student document",
			"student", issue.Student,
			"question", issue.Question,
			"needPage", issue.Need,
			"havePages", issue.Have)
	}
}

// write renders a composed document and lands it in the output directory.
// Rendering happens fully in memory before the file write, so a render
// failure leaves no partial output behind.
func write(doc collate.Document, outputsDir string, log *zap.SugaredLogger) error {
	data, err := pdf.Render(doc)
	if err != nil {
		return err
	}
	dest := filepath.Join(outputsDir, pdf.SafeName(doc.Name)+".pdf")
	if err := pdf.WriteFile(dest, data); err != nil {
		return err
	}
	log.Infow("wrote document", "name", doc.Name, "pages", len(doc.Pages), "path", dest)
	return nil
}
