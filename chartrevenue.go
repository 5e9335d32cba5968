package main

import (
	"fmt"
)

// chart box geometry, in points
const (
	chartWidth  = 450
	chartHeight = 260
	chartPlotX  = 60
	chartPlotY  = 40
	chartPlotW  = 350
	chartPlotH  = 180
)

// chartBlock builds the quarterly revenue bar chart and its caption.
// One bar per quarter, value axis fixed at 0..3500 in steps of 500.
func chartBlock(params ReportParams, styles StyleSheet) []Flowable {
	labels := make([]string, 0, len(params.Quarters))
	values := make([]int64, 0, len(params.Quarters))
	for _, q := range params.Quarters {
		labels = append(labels, q.Quarter)
		values = append(values, q.Revenue)
	}

	chart := BarChart{
		Title:  fmt.Sprintf("%s Quarterly Revenue ($M) — FY %d", params.Company, params.Year),
		Labels: labels,
		Values: values,

		AxisMin:  0,
		AxisMax:  3500,
		AxisStep: 500,

		Width:  chartWidth,
		Height: chartHeight,
		PlotX:  chartPlotX,
		PlotY:  chartPlotY,
		PlotW:  chartPlotW,
		PlotH:  chartPlotH,

		FillColor:   brandGreen,
		StrokeColor: brandStroke,
	}

	return []Flowable{
		Paragraph{Text: "Revenue Trend", Style: styles.SectionHead},
		chart,
		Paragraph{
			Text:  fmt.Sprintf("Figure 1: %s Quarterly Revenue Trend, FY %d", params.Company, params.Year),
			Style: styles.Caption,
		},
	}
}
