package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func renderToTemp(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, renderReport(testCtx(), buildReport(DefaultParams()), path))
	return path
}

func TestRenderReportWritesValidPDF(t *testing.T) {
	path := renderToTemp(t, "report.pdf")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	require.NoError(t, api.ValidateFile(path, nil))

	pages, err := api.PageCountFile(path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 2, "cover plus at least one content page")
}

func TestRenderReportCreatesMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "report.pdf")
	require.NoError(t, renderReport(testCtx(), buildReport(DefaultParams()), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderReportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, renderReport(testCtx(), buildReport(DefaultParams()), path))
	require.NoError(t, api.ValidateFile(path, nil))
}

func TestRenderReportDeterministic(t *testing.T) {
	first := renderToTemp(t, "one.pdf")
	second := renderToTemp(t, "two.pdf")

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a, b), "two runs must produce identical bytes")
}

func TestCoverRendersToSinglePageBeforeBreak(t *testing.T) {
	// the cover alone, minus its trailing page break, fits page 1
	styles := defaultStyles()
	cover := coverBlock(DefaultParams(), styles)
	cover = cover[:len(cover)-1]

	path := filepath.Join(t.TempDir(), "cover.pdf")
	require.NoError(t, renderReport(testCtx(), cover, path))

	pages, err := api.PageCountFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}
