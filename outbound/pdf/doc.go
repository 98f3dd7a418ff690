package pdf

import (
	"bytes"
	"context"
	"log/slog"

	"eticket-invoice/common/constant"

	"github.com/go-pdf/fpdf"
)

// lineSpacing approximates the drawing library's natural line height for the
// current font size.
const lineSpacing = 1.2

// doc wraps the fpdf drawing surface with the cursor-flow helpers the layout
// code leans on. All coordinates are in points. Draw failures never poison
// the document: the surface's sticky error is logged and cleared so the rest
// of the page still renders.
type doc struct {
	pdf  *fpdf.Fpdf
	size float64
}

func newDoc() *doc {
	p := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: constant.PageWidth, Ht: constant.PageHeight},
	})
	p.SetMargins(constant.PageMargin, constant.PageMargin, constant.PageMargin)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	d := &doc{pdf: p}
	d.setFont("", 10)
	d.setTextColor(constant.ColorText)

	return d
}

// addTallPage starts a new page at A4 width and 1.2x A4 height; every page
// after the summary uses this size.
func (d *doc) addTallPage() {
	d.pdf.AddPageFormat("P", fpdf.SizeType{Wd: constant.PageWidth, Ht: constant.TallPageHeight})
	d.pdf.SetXY(constant.PageMargin, constant.PageMargin)
}

func (d *doc) setFont(style string, size float64) {
	d.size = size
	d.pdf.SetFont("Helvetica", style, size)
}

func (d *doc) setTextColor(c [3]int) {
	d.pdf.SetTextColor(c[0], c[1], c[2])
}

func (d *doc) lineHeight() float64 {
	return d.size * lineSpacing
}

// moveDown advances the cursor by n line heights of the current font, the
// same way the layout's flow spacing is expressed throughout.
func (d *doc) moveDown(n float64) {
	d.pdf.SetY(d.pdf.GetY() + n*d.lineHeight())
}

// write emits wrapped text at the current cursor and advances it.
func (d *doc) write(txt string) {
	x := d.pdf.GetX()
	w, _ := d.pdf.GetPageSize()
	d.pdf.MultiCell(w-x-constant.PageMargin, d.lineHeight(), txt, "", "L", false)
}

// writeAt emits wrapped text at an absolute position and leaves the cursor
// right below it.
func (d *doc) writeAt(x, y, w float64, align, txt string) {
	d.pdf.SetXY(x, y)
	d.pdf.MultiCell(w, d.lineHeight(), txt, "", align, false)
}

// heightOf measures the wrapped height of txt at the current font size, the
// heightOfString equivalent the terms block depends on.
func (d *doc) heightOf(txt string, w float64) float64 {
	lines := d.pdf.SplitText(txt, w)
	if len(lines) == 0 {
		return d.lineHeight()
	}
	return float64(len(lines)) * d.lineHeight()
}

// hr draws the full-width black rule used on the summary page.
func (d *doc) hr(y float64) {
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(1)
	d.pdf.Line(constant.HrStartX, y, constant.HrEndX, y)
}

// thinRule draws the short gray rule separating ticket-page blocks.
func (d *doc) thinRule() {
	y := d.pdf.GetY() - 2
	d.pdf.SetDrawColor(constant.ColorRuleGray[0], constant.ColorRuleGray[1], constant.ColorRuleGray[2])
	d.pdf.SetLineWidth(0.8)
	d.pdf.Line(55, y, 320, y)
	d.moveDown(0.2)
}

// drawImageFile places an image file without advancing the cursor. A decode
// or read failure is logged and cleared; the page keeps rendering.
func (d *doc) drawImageFile(ctx context.Context, path string, x, y, w, h float64) {
	d.pdf.ImageOptions(path, x, y, w, h, false, fpdf.ImageOptions{}, 0, "")
	d.clearDrawError(ctx, "image", path)
}

// drawImageBytes registers raster bytes under name and places them.
func (d *doc) drawImageBytes(ctx context.Context, name string, raster []byte, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raster))
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	d.clearDrawError(ctx, "raster", name)
}

func (d *doc) clearDrawError(ctx context.Context, kind, ref string) {
	if !d.pdf.Err() {
		return
	}

	slog.ErrorContext(ctx, "failed to draw "+kind,
		slog.String("ref", ref),
		slog.Any(constant.LogFieldErr, d.pdf.Error()))
	d.pdf.ClearError()
}

func (d *doc) pageSize() (float64, float64) {
	return d.pdf.GetPageSize()
}
