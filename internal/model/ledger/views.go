package ledger

import (
	"time"

	"max.ks1230/expenses-ledger/internal/model/aggregate"
)

// Summary derives the dashboard figures from the current cache.
func (c *Controller) Summary(ref time.Time) aggregate.Summary {
	return aggregate.Summarize(c.Records(), ref)
}

// Daily groups the cached records by calendar day.
func (c *Controller) Daily() aggregate.DayGroups {
	return aggregate.GroupByDate(c.Records())
}

// Monthly groups the cached records by year and month.
func (c *Controller) Monthly() aggregate.MonthGroups {
	return aggregate.GroupByYearMonth(c.Records())
}
