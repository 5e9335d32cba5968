package main

import (
	"fmt"
	"path/filepath"
)

// ReportParams is the full input to the generator. DefaultParams
// reproduces the canonical sample report; tests swap the output path.
type ReportParams struct {
	Company    string
	Year       int
	Published  string
	Quarters   []QuarterFinancials
	OutputPath string
}

func DefaultParams() ReportParams {
	return ReportParams{
		Company:    companyName,
		Year:       fiscalYear,
		Published:  "January 15, 2025",
		Quarters:   DefaultQuarters(),
		OutputPath: filepath.Join(outputDir, outputFile),
	}
}

// buildReport assembles the full flowable sequence: cover, narrative,
// financial table, then the revenue chart. Order is fixed.
func buildReport(params ReportParams) []Flowable {
	styles := defaultStyles()

	flowables := coverBlock(params, styles)
	flowables = append(flowables, narrativeBlock(params, styles)...)
	flowables = append(flowables, tableBlock(params, styles)...)
	flowables = append(flowables, Spacer{H: 0.4 * inch})
	flowables = append(flowables, chartBlock(params, styles)...)

	return flowables
}

// coverBlock is page 1: title, subtitle, publication line, then the
// only manual page break in the document.
func coverBlock(params ReportParams, styles StyleSheet) []Flowable {
	return []Flowable{
		Spacer{H: 2 * inch},
		Paragraph{Text: params.Company, Style: styles.CoverTitle},
		Paragraph{
			Text:  fmt.Sprintf("Quarterly Earnings Report — Fiscal Year %d", params.Year),
			Style: styles.CoverSubtitle,
		},
		Spacer{H: 0.5 * inch},
		Paragraph{
			Text:  "Prepared for Investors and Analysts\nPublished: " + params.Published,
			Style: styles.CoverSubtitle,
		},
		PageBreak{},
	}
}

func narrativeBlock(params ReportParams, styles StyleSheet) []Flowable {
	return []Flowable{
		Paragraph{Text: "Executive Summary", Style: styles.SectionHead},
		Paragraph{
			Text: fmt.Sprintf(
				"%s delivered record-breaking results in fiscal year %d, "+
					"driven by strong demand across our cloud computing and enterprise "+
					"AI product lines. Total annual revenue reached $10,552 million, "+
					"representing year-over-year growth of 34%%. The company continued to "+
					"invest in next-generation GPU architectures and expanded its data "+
					"centre footprint in three new regions.",
				params.Company, params.Year),
			Style: styles.BodyJustified,
		},
		Paragraph{
			Text: "Third-quarter performance was particularly notable, with revenue of " +
				"$2,847 million and net income of $456 million. This was driven by " +
				"a 42% increase in data-centre revenue and the successful launch of " +
				"our new inference acceleration platform. Earnings per share for Q3 " +
				"came in at $2.28, exceeding consensus estimates by $0.12.",
			Style: styles.BodyJustified,
		},
		Paragraph{
			Text: "Looking ahead, management expects continued momentum in Q1 2025, " +
				"with revenue guidance of $3,300 – $3,500 million. The company " +
				"announced a $2 billion share repurchase programme and increased its " +
				"quarterly dividend by 15%.",
			Style: styles.BodyJustified,
		},
		Spacer{H: 0.3 * inch},
	}
}

// tableBlock builds the quarterly highlights grid plus its caption.
func tableBlock(params ReportParams, styles StyleSheet) []Flowable {
	header := []string{"Quarter", "Revenue ($M)", "Net Income ($M)", "EPS ($)"}

	rows := make([][]string, 0, len(params.Quarters))
	for _, q := range params.Quarters {
		rows = append(rows, []string{
			q.Quarter,
			FormatMillions(q.Revenue),
			FormatMillions(q.NetIncome),
			FormatEPS(q.EPS),
		})
	}

	totals := annualTotals(params.Quarters)
	totalsRow := []string{
		fmt.Sprintf("FY %d Total", params.Year),
		FormatMillions(totals.Revenue),
		FormatMillions(totals.NetIncome),
		FormatEPS(totals.EPS),
	}

	return []Flowable{
		Paragraph{Text: "Quarterly Financial Highlights", Style: styles.SectionHead},
		Table{
			Header:    header,
			Rows:      rows,
			TotalsRow: totalsRow,
			ColWidths: []float64{1.6 * inch, 1.5 * inch, 1.6 * inch, 1.2 * inch},
		},
		Paragraph{
			Text:  fmt.Sprintf("Table 1: %s Quarterly Financial Highlights, FY %d", params.Company, params.Year),
			Style: styles.Caption,
		},
	}
}
