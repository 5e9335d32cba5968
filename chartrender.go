package main

const (
	barSlotFraction = 0.65 // width of each bar within its category slot
	barLabelNudge   = 10   // gap between a bar top and its value label
)

// barChart draws the chart with vector primitives into a box reserved
// at the current cursor. The chart's plot coordinates are measured
// from the bottom-left of the box and converted to page coordinates
// here.
func (r *renderer) barChart(chart BarChart) {
	doc := r.doc
	r.ensureRoom(chart.Height)

	pageW, _ := doc.GetPageSize()
	x0 := (pageW - chart.Width) / 2
	y0 := doc.GetY()

	plotLeft := x0 + chart.PlotX
	plotBottom := y0 + chart.Height - chart.PlotY
	plotTop := plotBottom - chart.PlotH

	// overlaid title, centered over the box
	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(black.R, black.G, black.B)
	title := r.tr(chart.Title)
	doc.Text(x0+chart.Width/2-doc.GetStringWidth(title)/2, y0+20, title)

	// axis lines
	doc.SetDrawColor(black.R, black.G, black.B)
	doc.SetLineWidth(0.5)
	doc.Line(plotLeft, plotTop, plotLeft, plotBottom)
	doc.Line(plotLeft, plotBottom, plotLeft+chart.PlotW, plotBottom)

	// value axis ticks and labels
	scale := chart.PlotH / (chart.AxisMax - chart.AxisMin)
	doc.SetFont("Helvetica", "", 9)
	for v := chart.AxisMin; v <= chart.AxisMax; v += chart.AxisStep {
		yy := plotBottom - (v-chart.AxisMin)*scale
		doc.Line(plotLeft-4, yy, plotLeft, yy)
		label := FormatBarLabel(int64(v))
		doc.Text(plotLeft-6-doc.GetStringWidth(label), yy+3, label)
	}

	// bars, one category slot per quarter
	slot := chart.PlotW / float64(len(chart.Values))
	barW := slot * barSlotFraction
	doc.SetFillColor(chart.FillColor.R, chart.FillColor.G, chart.FillColor.B)
	doc.SetDrawColor(chart.StrokeColor.R, chart.StrokeColor.G, chart.StrokeColor.B)
	for i, v := range chart.Values {
		barH := (float64(v) - chart.AxisMin) * scale
		bx := plotLeft + float64(i)*slot + (slot-barW)/2
		doc.Rect(bx, plotBottom-barH, barW, barH, "FD")
	}

	// value labels above the bars, category labels below the axis
	doc.SetTextColor(black.R, black.G, black.B)
	for i, v := range chart.Values {
		barTop := plotBottom - (float64(v)-chart.AxisMin)*scale
		cx := plotLeft + float64(i)*slot + slot/2

		doc.SetFont("Helvetica", "B", 9)
		label := FormatBarLabel(v)
		doc.Text(cx-doc.GetStringWidth(label)/2, barTop-barLabelNudge, label)

		doc.SetFont("Helvetica", "", 9)
		cat := r.tr(chart.Labels[i])
		doc.Text(cx-doc.GetStringWidth(cat)/2, plotBottom+12, cat)
	}

	// advance past the reserved box
	doc.SetY(y0 + chart.Height)
}
