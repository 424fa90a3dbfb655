package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"max.ks1230/expenses-ledger/internal/entity/expense"
)

// MonthBucket holds one calendar month. Month is 1-12.
type MonthBucket struct {
	Month   time.Month
	Records []expense.Record
	Total   decimal.Decimal
}

type YearBucket struct {
	Year int
	// Months are ascending.
	Months []MonthBucket
	Total  decimal.Decimal
}

type MonthGroups struct {
	// Years are ascending; use Descending for most-recent-first display.
	Years    []YearBucket
	Warnings Warnings
}

// GroupByYearMonth partitions records by year, then by month.
func GroupByYearMonth(records []expense.Record) MonthGroups {
	entries, warnings := scan(records)

	type key struct {
		year  int
		month time.Month
	}
	months := make(map[key]*MonthBucket)
	for _, e := range entries {
		k := key{year: e.day.Year(), month: e.day.Month()}
		b, ok := months[k]
		if !ok {
			b = &MonthBucket{Month: k.month, Total: decimal.Zero}
			months[k] = b
		}
		b.Records = append(b.Records, e.rec)
		b.Total = b.Total.Add(e.amount)
	}

	years := make(map[int]*YearBucket)
	for k, b := range months {
		y, ok := years[k.year]
		if !ok {
			y = &YearBucket{Year: k.year, Total: decimal.Zero}
			years[k.year] = y
		}
		y.Months = append(y.Months, *b)
		y.Total = y.Total.Add(b.Total)
	}

	res := MonthGroups{Years: make([]YearBucket, 0, len(years)), Warnings: warnings}
	for _, y := range years {
		sort.Slice(y.Months, func(i, j int) bool {
			return y.Months[i].Month < y.Months[j].Month
		})
		res.Years = append(res.Years, *y)
	}
	sort.Slice(res.Years, func(i, j int) bool {
		return res.Years[i].Year < res.Years[j].Year
	})
	return res
}

// Descending returns the years most recent first. Months stay ascending.
func (g MonthGroups) Descending() []YearBucket {
	res := make([]YearBucket, len(g.Years))
	for i, y := range g.Years {
		res[len(g.Years)-1-i] = y
	}
	return res
}

// Month looks up a single bucket.
func (g MonthGroups) Month(year int, month time.Month) (MonthBucket, bool) {
	for _, y := range g.Years {
		if y.Year != year {
			continue
		}
		for _, m := range y.Months {
			if m.Month == month {
				return m, true
			}
		}
	}
	return MonthBucket{}, false
}
