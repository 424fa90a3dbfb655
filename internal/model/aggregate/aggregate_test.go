package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expenses-ledger/internal/entity/expense"
)

func rec(id, date, amount string) expense.Record {
	return expense.Record{ID: id, User: expense.Nobita, Date: expense.Date(date), Amount: expense.Amount(amount)}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

var sample = []expense.Record{
	rec("1", "2023-12-31", "10.10"),
	rec("2", "2024-01-01T08:00", "0.10"),
	rec("3", "2024-01-01T23:00", "0.20"),
	rec("4", "2024-02-15", "5"),
	rec("5", "2024-02-16", "100.01"),
	rec("6", "2024-03-04", "7.77"),
}

func Test_OnGroupByDate_ShouldBucketByCalendarDay(t *testing.T) {
	groups := GroupByDate(sample)

	require.Len(t, groups.Buckets, 5)
	jan1 := groups.Buckets[1]
	assert.Equal(t, "2024-01-01", jan1.Label())
	assert.Len(t, jan1.Records, 2)
	assert.Equal(t, "2", jan1.Records[0].ID)
	assert.Equal(t, "3", jan1.Records[1].ID)
	assertAmount(t, "0.30", jan1.Total)
	assert.Empty(t, groups.Warnings)
}

func Test_OnGroupByDate_ShouldSortBucketsAscending(t *testing.T) {
	records := []expense.Record{
		rec("a", "2024-03-01", "1"),
		rec("b", "2023-11-30", "1"),
		rec("c", "2024-01-15", "1"),
	}

	groups := GroupByDate(records)

	labels := make([]string, 0, len(groups.Buckets))
	for _, b := range groups.Buckets {
		labels = append(labels, b.Label())
	}
	assert.Equal(t, []string{"2023-11-30", "2024-01-15", "2024-03-01"}, labels)
}

func Test_OnAggregation_ShouldKeepSumsConsistent(t *testing.T) {
	grand := GrandTotal(sample).Amount

	byDate := decimal.Zero
	for _, b := range GroupByDate(sample).Buckets {
		byDate = byDate.Add(b.Total)
	}

	byMonth := decimal.Zero
	for _, y := range GroupByYearMonth(sample).Years {
		for _, m := range y.Months {
			byMonth = byMonth.Add(m.Total)
		}
	}

	assertAmount(t, "123.18", grand)
	assert.True(t, grand.Equal(byDate))
	assert.True(t, grand.Equal(byMonth))
}

func Test_OnDecimalSums_ShouldNotDrift(t *testing.T) {
	records := make([]expense.Record, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, rec("x", "2024-01-01", "0.1"))
	}

	assert.Equal(t, "1", GrandTotal(records).Amount.String())
}

func Test_OnTrailingWindowTotal_ShouldIncludeSixDaysBack(t *testing.T) {
	ref := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	records := []expense.Record{
		rec("in-edge", "2024-03-04", "1"),
		rec("out-edge", "2024-03-03", "10"),
		rec("today-late", "2024-03-10T23:59:59Z", "100"),
		rec("tomorrow", "2024-03-11", "1000"),
	}

	total := TrailingWindowTotal(records, ref)

	assertAmount(t, "101.00", total.Amount)
	assert.Equal(t, 2, total.Count)
}

func Test_OnTrailingWindow_ShouldSpanSevenCalendarDays(t *testing.T) {
	from, to := TrailingWindow(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.February, 24, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 2024, to.Year())
	assert.Equal(t, time.March, to.Month())
	assert.Equal(t, 1, to.Day())
	assert.Equal(t, 23, to.Hour())
}

func Test_OnDayTotal_ShouldMatchCalendarDateOnly(t *testing.T) {
	ref := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

	total := DayTotal(sample, ref)

	assertAmount(t, "0.30", total.Amount)
	assert.Equal(t, 2, total.Count)
}

func Test_OnMonthToDateTotal_ShouldMatchYearAndMonth(t *testing.T) {
	records := append([]expense.Record{rec("other-year", "2023-02-20", "999")}, sample...)
	ref := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	total := MonthToDateTotal(records, ref)

	assertAmount(t, "105.01", total.Amount)
}

func Test_OnGroupByYearMonth_ShouldOrderMonthsAscendingAndOfferDescendingYears(t *testing.T) {
	groups := GroupByYearMonth(sample)

	require.Len(t, groups.Years, 2)
	assert.Equal(t, 2023, groups.Years[0].Year)
	assert.Equal(t, 2024, groups.Years[1].Year)

	months := groups.Years[1].Months
	require.Len(t, months, 3)
	assert.Equal(t, time.January, months[0].Month)
	assert.Equal(t, time.February, months[1].Month)
	assert.Equal(t, time.March, months[2].Month)
	assertAmount(t, "105.01", months[1].Total)
	assertAmount(t, "113.08", groups.Years[1].Total)

	desc := groups.Descending()
	assert.Equal(t, 2024, desc[0].Year)
	assert.Equal(t, 2023, desc[1].Year)

	feb, ok := groups.Month(2024, time.February)
	require.True(t, ok)
	assert.Len(t, feb.Records, 2)
	_, ok = groups.Month(2022, time.February)
	assert.False(t, ok)
}

func Test_OnDistribution_ShouldReturnOnePointPerDateAscending(t *testing.T) {
	points, warnings := Distribution(sample)

	require.Len(t, points, 5)
	assert.Empty(t, warnings)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Label, points[i].Label)
	}
	assert.Equal(t, "2024-01-01", points[1].Label)
	assertAmount(t, "0.30", points[1].Total)
}

func Test_OnMalformedRecords_ShouldExcludeAndWarn(t *testing.T) {
	records := []expense.Record{
		rec("ok", "2024-03-10", "5"),
		rec("nan", "2024-03-10", "NaN"),
		rec("no-date", "", "5"),
		rec("bad-date", "10/03/2024", "5"),
		rec("negative", "2024-03-10", "-1"),
	}
	ref := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	assert.NotPanics(t, func() {
		total := GrandTotal(records)
		assertAmount(t, "5.00", total.Amount)
		require.Len(t, total.Warnings, 4)
		assert.Equal(t, "nan", total.Warnings[0].RecordID)
		assert.Equal(t, "amount", total.Warnings[0].Field)
		assert.Equal(t, "date", total.Warnings[1].Field)

		assertAmount(t, "5.00", DayTotal(records, ref).Amount)
		assertAmount(t, "5.00", TrailingWindowTotal(records, ref).Amount)
		assertAmount(t, "5.00", MonthToDateTotal(records, ref).Amount)
		assert.Len(t, GroupByDate(records).Buckets, 1)
		assert.Len(t, GroupByYearMonth(records).Warnings, 4)
	})
}

func Test_OnSummarize_ShouldBundleAllFigures(t *testing.T) {
	ref := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)
	records := []expense.Record{
		rec("1", "2024-03-10", "12.50"),
		rec("2", "2024-03-05", "7.50"),
		rec("3", "2024-03-01", "30"),
		rec("4", "2024-02-29", "100"),
		rec("5", "2024-03-09", "NaN"),
	}

	s := Summarize(records, ref)

	assert.Equal(t, "12.50", Money(s.Today))
	assert.Equal(t, "20.00", Money(s.LastSevenDays))
	assert.Equal(t, "50.00", Money(s.ThisMonth))
	assert.Len(t, s.Distribution, 4)
	assert.Len(t, s.Warnings, 1)
}

func Test_OnEmptyInput_ShouldReturnZeroes(t *testing.T) {
	s := Summarize(nil, time.Now())

	assert.True(t, s.Today.IsZero())
	assert.Empty(t, s.Distribution)
	assert.Empty(t, GroupByYearMonth(nil).Years)
}
