package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"max.ks1230/expenses-ledger/internal/entity/expense"
)

// Summary is the dashboard view for one reference instant.
type Summary struct {
	Today         decimal.Decimal `json:"today"`
	LastSevenDays decimal.Decimal `json:"lastSevenDays"`
	ThisMonth     decimal.Decimal `json:"thisMonth"`
	Distribution  []Point         `json:"distribution"`
	Warnings      Warnings        `json:"warnings,omitempty"`
}

// Summarize computes every summary figure from a single pass of integrity checks.
func Summarize(records []expense.Record, ref time.Time) Summary {
	entries, warnings := scan(records)
	return Summary{
		Today:         sumEntries(entries, onDay(ref)).Amount,
		LastSevenDays: sumEntries(entries, inTrailingWindow(ref)).Amount,
		ThisMonth:     sumEntries(entries, inMonth(ref)).Amount,
		Distribution:  distribution(entries),
		Warnings:      warnings,
	}
}

// Money renders an amount with two decimals. This is the only place sums are rounded.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
