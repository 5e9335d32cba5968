package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"
)

const pageMargin = 1 * inch

const (
	tableHeaderRowH = 31
	tableDataRowH   = 24
)

// creation date pinned so repeated runs are byte-identical
var reportCreated = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

// renderer wraps the layout engine plus the cp1252 translator the
// core fonts need for the dashes in the report text.
type renderer struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// renderReport hands the flowable sequence to the layout engine.
// Pagination, text reflow and the final write all happen here; the
// output file is overwritten unconditionally.
func renderReport(ctx context.Context, flowables []Flowable, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.SetCreationDate(reportCreated)
	doc.SetModificationDate(reportCreated)
	doc.AddPage()

	r := &renderer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}

	for _, f := range flowables {
		switch f := f.(type) {
		case Paragraph:
			r.paragraph(f)
		case Spacer:
			doc.SetY(doc.GetY() + f.H)
		case PageBreak:
			doc.AddPage()
		case Table:
			r.table(f)
		case BarChart:
			r.barChart(f)
		default:
			zerolog.Ctx(ctx).Warn().Msgf("skipping unknown flowable %T", f)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Int("flowables", len(flowables)).
		Int("pages", doc.PageCount()).
		Msg("layout complete")

	return doc.OutputFileAndClose(outputPath)
}

func (r *renderer) paragraph(p Paragraph) {
	doc := r.doc
	st := p.Style
	if st.SpaceBefore > 0 {
		doc.SetY(doc.GetY() + st.SpaceBefore)
	}
	doc.SetFont(st.FontFamily, st.FontStyle, st.FontSize)
	doc.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	doc.MultiCell(0, st.Leading, r.tr(p.Text), "", st.Align, false)
	if st.SpaceAfter > 0 {
		doc.SetY(doc.GetY() + st.SpaceAfter)
	}
}

func (r *renderer) table(t Table) {
	doc := r.doc
	rowCount := len(t.Rows) + 1 // data rows plus totals
	r.ensureRoom(tableHeaderRowH + float64(rowCount)*tableDataRowH)

	var tableW float64
	for _, w := range t.ColWidths {
		tableW += w
	}
	pageW, _ := doc.GetPageSize()
	x0 := (pageW - tableW) / 2 // tables sit centered, like their captions

	// header row on the brand color
	doc.SetX(x0)
	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(white.R, white.G, white.B)
	doc.SetFillColor(brandGreen.R, brandGreen.G, brandGreen.B)
	doc.SetDrawColor(gridGrey.R, gridGrey.G, gridGrey.B)
	doc.SetLineWidth(0.5)
	for i, cell := range t.Header {
		doc.CellFormat(t.ColWidths[i], tableHeaderRowH, r.tr(cell), "1", 0, "CM", true, 0, "")
	}
	doc.Ln(-1)
	headerBottom := doc.GetY()

	// data rows, shading every other one
	doc.SetTextColor(black.R, black.G, black.B)
	doc.SetFont("Helvetica", "", 10)
	doc.SetFillColor(rowShade.R, rowShade.G, rowShade.B)
	for n, row := range t.Rows {
		doc.SetX(x0)
		fill := n%2 == 0
		for i, cell := range row {
			doc.CellFormat(t.ColWidths[i], tableDataRowH, r.tr(cell), "1", 0, cellAlign(i), fill, 0, "")
		}
		doc.Ln(-1)
	}
	totalsTop := doc.GetY()

	// totals row, bold on the darker shade
	doc.SetX(x0)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(totalsShade.R, totalsShade.G, totalsShade.B)
	for i, cell := range t.TotalsRow {
		doc.CellFormat(t.ColWidths[i], tableDataRowH, r.tr(cell), "1", 0, cellAlign(i), true, 0, "")
	}
	doc.Ln(-1)

	// heavy rules under the header and above the totals, drawn last so
	// the cell borders do not paint over them
	doc.SetDrawColor(ruleGrey.R, ruleGrey.G, ruleGrey.B)
	doc.SetLineWidth(1.5)
	doc.Line(x0, headerBottom, x0+tableW, headerBottom)
	doc.SetLineWidth(1)
	doc.Line(x0, totalsTop, x0+tableW, totalsTop)
}

// cellAlign right-aligns the numeric columns, centered vertically.
func cellAlign(col int) string {
	if col == 0 {
		return "LM"
	}
	return "RM"
}

// ensureRoom starts a new page when a keep-together block cannot fit
// in the remaining page height.
func (r *renderer) ensureRoom(blockH float64) {
	_, pageH := r.doc.GetPageSize()
	_, _, _, marginBottom := r.doc.GetMargins()
	if r.doc.GetY()+blockH > pageH-marginBottom {
		r.doc.AddPage()
	}
}
