package main

// A Flowable is one discrete piece of report content. The renderer
// lays them out in document order and handles pagination; builders
// only decide what the content is.
type Flowable interface {
	flowable()
}

type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

// Spacer advances the cursor by H points.
type Spacer struct {
	H float64
}

// PageBreak forces the next flowable onto a fresh page.
type PageBreak struct{}

// Table is a styled grid. TotalsRow is kept apart from Rows so the
// renderer can shade and embolden it without counting rows.
type Table struct {
	Header    []string
	Rows      [][]string
	TotalsRow []string
	ColWidths []float64
}

// BarChart is a vertical bar chart drawn into a fixed-size box. Plot
// coordinates are relative to the bottom-left corner of the box.
type BarChart struct {
	Title  string
	Labels []string
	Values []int64

	AxisMin  float64
	AxisMax  float64
	AxisStep float64

	Width  float64
	Height float64
	PlotX  float64
	PlotY  float64
	PlotW  float64
	PlotH  float64

	FillColor   RGB
	StrokeColor RGB
}

func (Paragraph) flowable() {}
func (Spacer) flowable()    {}
func (PageBreak) flowable() {}
func (Table) flowable()     {}
func (BarChart) flowable()  {}
