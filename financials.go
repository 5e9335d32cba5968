package main

import (
	"github.com/shopspring/decimal"
)

// QuarterFinancials is one quarter of reported results. Revenue and
// net income are in millions of dollars.
type QuarterFinancials struct {
	Quarter   string
	Revenue   int64
	NetIncome int64
	EPS       decimal.Decimal
}

type AnnualTotals struct {
	Revenue   int64
	NetIncome int64
	EPS       decimal.Decimal
}

// DefaultQuarters is the ground-truth dataset the report is built
// from. Four quarters, one fiscal year, never mutated.
func DefaultQuarters() []QuarterFinancials {
	return []QuarterFinancials{
		{Quarter: "Q1 2024", Revenue: 2_105, NetIncome: 312, EPS: decimal.RequireFromString("1.56")},
		{Quarter: "Q2 2024", Revenue: 2_498, NetIncome: 389, EPS: decimal.RequireFromString("1.95")},
		{Quarter: "Q3 2024", Revenue: 2_847, NetIncome: 456, EPS: decimal.RequireFromString("2.28")},
		{Quarter: "Q4 2024", Revenue: 3_102, NetIncome: 521, EPS: decimal.RequireFromString("2.61")},
	}
}

// annualTotals sums each column across the quarters.
func annualTotals(quarters []QuarterFinancials) AnnualTotals {
	var totals AnnualTotals
	totals.EPS = decimal.Zero
	for _, q := range quarters {
		totals.Revenue += q.Revenue
		totals.NetIncome += q.NetIncome
		totals.EPS = totals.EPS.Add(q.EPS)
	}
	return totals
}
