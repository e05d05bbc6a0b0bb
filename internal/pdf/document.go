// Package pdf wraps the PDF libraries behind the collation engine: pdfcpu
// for reading source-document page geometry and gofpdf/gofpdi for rendering
// composite-page plans into output documents.
package pdf

import (
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document is a read-only source PDF: its path plus per-page geometry.
// The page content itself is only touched at render time, via gofpdi.
type Document struct {
	path string
	dims []types.Dim
}

// Open reads a source document's page dimensions. Documents are sources
// only and are never mutated.
func Open(path string) (*Document, error) {
	dims, err := pdfapi.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%s has no pages", path)
	}
	return &Document{path: path, dims: dims}, nil
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) PageCount() int {
	return len(d.dims)
}

// PageSize returns the width and height in points of the 1-based page.
func (d *Document) PageSize(page int) (float64, float64) {
	dim := d.dims[page-1]
	return dim.Width, dim.Height
}
