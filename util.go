package main

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const inch = 72.0 // points

var enPrinter = message.NewPrinter(language.English)

// FormatMillions renders a dollars-millions figure with thousands
// separators, e.g. 2105 -> "2,105".
func FormatMillions(v int64) string {
	return enPrinter.Sprintf("%d", v)
}

// FormatEPS renders an earnings-per-share value with two decimals.
func FormatEPS(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatBarLabel renders the plain integer used above each chart bar.
func FormatBarLabel(v int64) string {
	return strconv.FormatInt(v, 10)
}
