package pdf

import (
	"bytes"
	"fmt"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"

	"examcollate/internal/collate"
)

const labelFont = "Helvetica"

// Render draws a composite-page plan into PDF bytes. Source pages are
// imported as templates and placed at the rects the compositor computed;
// labels become semi-transparent dark bars with white text, matching the
// overlay styling teachers see on every collated page.
func Render(doc collate.Document) ([]byte, error) {
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("document %q has no pages", doc.Name)
	}

	f := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: doc.Pages[0].Width, Ht: doc.Pages[0].Height},
	})
	f.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()

	for _, page := range doc.Pages {
		f.AddPageFormat("P", gofpdf.SizeType{Wd: page.Width, Ht: page.Height})

		for _, pl := range page.Placements {
			tpl := imp.ImportPage(f, pl.Ref.Source.Path(), pl.Ref.Page, "/MediaBox")
			imp.UseImportedTemplate(f, tpl, pl.Rect.X, pl.Rect.Y, pl.Rect.W, pl.Rect.H)
		}

		for _, lb := range page.Labels {
			f.SetAlpha(0.85, "Normal")
			f.SetFillColor(77, 77, 77)
			f.Rect(lb.Bar.X, lb.Bar.Y, lb.Bar.W, lb.Bar.H, "F")
			f.SetAlpha(1, "Normal")

			f.SetFont(labelFont, "", lb.FontSize)
			f.SetTextColor(255, 255, 255)
			f.Text(lb.TextX, lb.TextY, lb.Text)
		}
	}

	if f.Err() {
		return nil, fmt.Errorf("rendering %q: %w", doc.Name, f.Error())
	}
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering %q: %w", doc.Name, err)
	}
	return buf.Bytes(), nil
}
