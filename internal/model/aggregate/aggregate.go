// Package aggregate folds expense records into calendar buckets and totals.
//
// All functions are pure: the reference instant is always passed in, nothing
// reads the wall clock. Sums are exact decimal additions; callers round only
// when rendering (see Money).
//
// Records whose amount or date cannot be read are excluded from every sum and
// reported as customerr.DataIntegrityWarning values alongside the result.
package aggregate

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
)

type Warnings []customerr.DataIntegrityWarning

// entry is a record that passed the integrity check.
type entry struct {
	rec    expense.Record
	day    time.Time
	amount decimal.Decimal
}

// scan splits records into readable entries and warnings, preserving order.
func scan(records []expense.Record) ([]entry, Warnings) {
	entries := make([]entry, 0, len(records))
	var warnings Warnings
	for _, rec := range records {
		day, err := rec.Date.Day()
		if err != nil {
			warnings = append(warnings, warn(rec, "date", err))
			continue
		}
		amount, err := rec.Amount.Decimal()
		if err != nil {
			warnings = append(warnings, warn(rec, "amount", err))
			continue
		}
		entries = append(entries, entry{rec: rec, day: day, amount: amount})
	}
	return entries, warnings
}

func warn(rec expense.Record, field string, err error) customerr.DataIntegrityWarning {
	w := customerr.DataIntegrityWarning{RecordID: rec.ID, Field: field, Reason: err.Error()}
	logger.Warn("record excluded from aggregation",
		zap.String("id", rec.ID),
		zap.String("field", field),
		zap.Error(err),
	)
	return w
}

// Total is a sum over the records that matched a filter.
type Total struct {
	Amount   decimal.Decimal
	Count    int
	Warnings Warnings
}

func sumWhere(records []expense.Record, match func(day time.Time) bool) Total {
	entries, warnings := scan(records)
	total := sumEntries(entries, match)
	total.Warnings = warnings
	return total
}

func sumEntries(entries []entry, match func(day time.Time) bool) Total {
	total := Total{Amount: decimal.Zero}
	for _, e := range entries {
		if match(e.day) {
			total.Amount = total.Amount.Add(e.amount)
			total.Count++
		}
	}
	return total
}

// GrandTotal sums every readable record.
func GrandTotal(records []expense.Record) Total {
	return sumWhere(records, func(time.Time) bool { return true })
}

// DayTotal sums records dated on the calendar day of ref.
func DayTotal(records []expense.Record, ref time.Time) Total {
	return sumWhere(records, onDay(ref))
}

func onDay(ref time.Time) func(time.Time) bool {
	day := expense.CalendarDay(ref)
	return func(d time.Time) bool { return d.Equal(day) }
}

// TrailingWindowTotal sums records dated within the seven calendar days
// ending on the day of ref, both ends inclusive.
func TrailingWindowTotal(records []expense.Record, ref time.Time) Total {
	return sumWhere(records, inTrailingWindow(ref))
}

func inTrailingWindow(ref time.Time) func(time.Time) bool {
	from, to := TrailingWindow(ref)
	return func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	}
}

// TrailingWindow returns the start of the day six days before ref and the end
// of ref's day, both on the UTC calendar-day scale used by expense.Date.
func TrailingWindow(ref time.Time) (from, to time.Time) {
	day := expense.CalendarDay(ref)
	from = now.With(day.AddDate(0, 0, -6)).BeginningOfDay()
	to = now.With(day).EndOfDay()
	return from, to
}

// MonthToDateTotal sums records in the same calendar year and month as ref.
func MonthToDateTotal(records []expense.Record, ref time.Time) Total {
	return sumWhere(records, inMonth(ref))
}

func inMonth(ref time.Time) func(time.Time) bool {
	month := now.With(expense.CalendarDay(ref))
	from, to := month.BeginningOfMonth(), month.EndOfMonth()
	return func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	}
}

// DayBucket holds the records of one calendar day in input order.
type DayBucket struct {
	Date    time.Time
	Records []expense.Record
	Total   decimal.Decimal
}

func (b DayBucket) Label() string {
	return b.Date.Format(expense.DateLayout)
}

type DayGroups struct {
	// Buckets are ordered by date ascending.
	Buckets  []DayBucket
	Warnings Warnings
}

// GroupByDate partitions records by calendar day.
func GroupByDate(records []expense.Record) DayGroups {
	entries, warnings := scan(records)
	return DayGroups{Buckets: groupEntriesByDate(entries), Warnings: warnings}
}

func groupEntriesByDate(entries []entry) []DayBucket {
	index := make(map[time.Time]int)
	buckets := make([]DayBucket, 0)
	for _, e := range entries {
		i, ok := index[e.day]
		if !ok {
			i = len(buckets)
			index[e.day] = i
			buckets = append(buckets, DayBucket{Date: e.day, Total: decimal.Zero})
		}
		buckets[i].Records = append(buckets[i].Records, e.rec)
		buckets[i].Total = buckets[i].Total.Add(e.amount)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})
	return buckets
}

// Point is one slice of the per-date distribution chart.
type Point struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Distribution returns one point per distinct date, ascending. ISO labels
// sort lexicographically in the same order as the dates.
func Distribution(records []expense.Record) ([]Point, Warnings) {
	entries, warnings := scan(records)
	return distribution(entries), warnings
}

func distribution(entries []entry) []Point {
	buckets := groupEntriesByDate(entries)
	points := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, Point{Label: b.Label(), Total: b.Total})
	}
	return points
}
