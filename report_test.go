package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportHasOnePageBreakAfterCover(t *testing.T) {
	flowables := buildReport(DefaultParams())

	breaks := []int{}
	for i, f := range flowables {
		if _, ok := f.(PageBreak); ok {
			breaks = append(breaks, i)
		}
	}
	require.Len(t, breaks, 1, "exactly one manual page break")

	// the break closes the cover; the narrative section head follows it
	next, ok := flowables[breaks[0]+1].(Paragraph)
	require.True(t, ok)
	assert.Equal(t, "Executive Summary", next.Text)

	// everything before the break is cover content
	for _, f := range flowables[:breaks[0]] {
		switch f.(type) {
		case Paragraph, Spacer:
		default:
			t.Fatalf("unexpected flowable %T on the cover", f)
		}
	}
}

func TestCoverBlock(t *testing.T) {
	styles := defaultStyles()
	cover := coverBlock(DefaultParams(), styles)
	require.Len(t, cover, 6)

	title, ok := cover[1].(Paragraph)
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", title.Text)
	assert.Equal(t, styles.CoverTitle, title.Style)

	subtitle, ok := cover[2].(Paragraph)
	require.True(t, ok)
	assert.Equal(t, "Quarterly Earnings Report — Fiscal Year 2024", subtitle.Text)

	contact, ok := cover[4].(Paragraph)
	require.True(t, ok)
	assert.Contains(t, contact.Text, "Published: January 15, 2025")

	_, ok = cover[5].(PageBreak)
	assert.True(t, ok, "cover ends with the page break")
}

func TestNarrativeBlock(t *testing.T) {
	styles := defaultStyles()
	narrative := narrativeBlock(DefaultParams(), styles)

	var bodies []Paragraph
	for _, f := range narrative {
		if p, ok := f.(Paragraph); ok && p.Style == styles.BodyJustified {
			bodies = append(bodies, p)
		}
	}
	require.Len(t, bodies, 3)

	joined := bodies[0].Text + bodies[1].Text + bodies[2].Text
	assert.Contains(t, joined, "$10,552 million")
	assert.Contains(t, joined, "$2,847 million")
	assert.Contains(t, joined, "$2.28")
	assert.Contains(t, joined, "$3,300 – $3,500 million")
}

func TestTableBlock(t *testing.T) {
	styles := defaultStyles()
	block := tableBlock(DefaultParams(), styles)
	require.Len(t, block, 3)

	table, ok := block[1].(Table)
	require.True(t, ok)

	assert.Equal(t, []string{"Quarter", "Revenue ($M)", "Net Income ($M)", "EPS ($)"}, table.Header)
	require.Len(t, table.Rows, 4)
	require.Len(t, table.TotalsRow, 4)
	require.Len(t, table.ColWidths, 4)

	assert.Equal(t, []string{"Q1 2024", "2,105", "312", "1.56"}, table.Rows[0])
	assert.Equal(t, []string{"Q4 2024", "3,102", "521", "2.61"}, table.Rows[3])
	assert.Equal(t, []string{"FY 2024 Total", "10,552", "1,678", "8.40"}, table.TotalsRow)

	// the grid must fit inside the printable width of a letter page
	var tableW float64
	for _, w := range table.ColWidths {
		tableW += w
	}
	assert.Less(t, tableW, 8.5*inch-2*pageMargin)

	caption, ok := block[2].(Paragraph)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(caption.Text, "Table 1:"))
	assert.Equal(t, styles.Caption, caption.Style)
}

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()
	assert.Equal(t, "Acme Corp", params.Company)
	assert.Equal(t, 2024, params.Year)
	assert.Equal(t, "data/sample_financial_report.pdf", params.OutputPath)
	assert.Len(t, params.Quarters, 4)
}
