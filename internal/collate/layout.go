// Package collate is the page-mapping and layout-composition engine. It
// turns the page map and the students' response documents into composite-page
// plans: landscape pages with a student answer region, a mark-scheme region
// and label overlays. Plans reference source pages by document and page
// number only; rendering them into actual PDF content is the pdf package's
// job.
package collate

import "examcollate/internal/config"

// Source is a read-only PDF document the compositor can place pages from.
type Source interface {
	// Path locates the document for the renderer.
	Path() string
	PageCount() int
	// PageSize returns the width and height in points of the 1-based page.
	PageSize(page int) (w, h float64)
}

// Rect is a placement rectangle in page points, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// PageRef names one page of a source document.
type PageRef struct {
	Source Source
	Page   int
}

// Placement puts one source page, already aspect-fit scaled, at a rect on
// the composite page.
type Placement struct {
	Ref  PageRef
	Rect Rect
}

// Label is a text overlay: a dark bar with the text drawn near its left edge.
type Label struct {
	Text         string
	Bar          Rect
	TextX, TextY float64
	FontSize     float64
}

// Page is one composite output page.
type Page struct {
	Width, Height float64
	Placements    []Placement
	Labels        []Label
}

// Document is an ordered sequence of composite pages destined for one output
// file.
type Document struct {
	Name  string
	Pages []Page
}

// Compositor builds composite pages from a fixed layout configuration.
// Composition is a pure function of its inputs: identical sources and labels
// always produce an identical plan.
type Compositor struct {
	cfg config.LayoutConfig
}

func NewCompositor(cfg config.LayoutConfig) *Compositor {
	return &Compositor{cfg: cfg}
}

// canvas returns the landscape page size: the configured base size with
// width and height swapped if the base is portrait.
func (c *Compositor) canvas() (w, h float64) {
	w, h = c.cfg.PageWidth, c.cfg.PageHeight
	if w < h {
		w, h = h, w
	}
	return w, h
}

// fitRect scales a source of srcW x srcH uniformly to fit inside region,
// anchored at the region's top-left. Aspect ratio is preserved: one scale
// factor for both axes, excess region space stays blank.
func fitRect(region Rect, srcW, srcH float64) Rect {
	if srcW <= 0 || srcH <= 0 {
		return Rect{X: region.X, Y: region.Y}
	}
	scale := region.W / srcW
	if s := region.H / srcH; s < scale {
		scale = s
	}
	return Rect{X: region.X, Y: region.Y, W: srcW * scale, H: srcH * scale}
}

func (c *Compositor) place(region Rect, ref PageRef) Placement {
	w, h := ref.Source.PageSize(ref.Page)
	return Placement{Ref: ref, Rect: fitRect(region, w, h)}
}

// label builds a text overlay anchored to the bottom of region: a bar across
// the region's full width with the text just above the region's bottom edge.
func (c *Compositor) label(text string, region Rect) Label {
	bottom := region.Y + region.H
	return Label{
		Text: text,
		Bar: Rect{
			X: region.X,
			Y: bottom - c.cfg.LabelBarHeight,
			W: region.W,
			H: c.cfg.LabelBarHeight,
		},
		TextX:    region.X + c.cfg.LabelInsetX,
		TextY:    bottom - c.cfg.LabelBaseline,
		FontSize: c.cfg.LabelFontSize,
	}
}

// ComposeQuestionPage builds one landscape page: the student's answer page
// aspect-fit into the left region, the sub-question's mark-scheme pages into
// the right region (stacked top-to-bottom in equal-height bands when there is
// more than one), and the overlay text on a bar along the bottom of the left
// region.
func (c *Compositor) ComposeQuestionPage(student PageRef, markScheme []PageRef, overlay string) Page {
	w, h := c.canvas()
	page := Page{Width: w, Height: h}

	left := Rect{X: 0, Y: 0, W: w * c.cfg.QuestionSplit, H: h}
	page.Placements = append(page.Placements, c.place(left, student))

	right := Rect{X: left.W, Y: 0, W: w - left.W, H: h}
	if n := len(markScheme); n > 0 {
		bandH := right.H / float64(n)
		for i, ref := range markScheme {
			band := Rect{X: right.X, Y: float64(i) * bandH, W: right.W, H: bandH}
			page.Placements = append(page.Placements, c.place(band, ref))
		}
	}

	page.Labels = append(page.Labels, c.label(overlay, left))
	return page
}

// ComposeExtraSpacePage builds one two-up landscape page. A nil right ref
// leaves the right half blank with no label.
func (c *Compositor) ComposeExtraSpacePage(left PageRef, right *PageRef, leftLabel, rightLabel string) Page {
	w, h := c.canvas()
	page := Page{Width: w, Height: h}

	leftHalf := Rect{X: 0, Y: 0, W: w * c.cfg.ExtraSplit, H: h}
	page.Placements = append(page.Placements, c.place(leftHalf, left))
	page.Labels = append(page.Labels, c.label(leftLabel, leftHalf))

	if right != nil {
		rightHalf := Rect{X: leftHalf.W, Y: 0, W: w - leftHalf.W, H: h}
		page.Placements = append(page.Placements, c.place(rightHalf, *right))
		page.Labels = append(page.Labels, c.label(rightLabel, rightHalf))
	}
	return page
}
