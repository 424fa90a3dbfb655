package expense

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Date is an ISO date or date-time string as sent over the wire.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) IsEmpty() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Day returns the calendar day of d as midnight UTC. Any time-of-day part is
// dropped; a date-time with an offset keeps the calendar date it was written in.
func (d Date) Day() (time.Time, error) {
	raw := strings.TrimSpace(string(d))
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return CalendarDay(t), nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognised date %q", raw)
}

func (d Date) String() string {
	return string(d)
}

// CalendarDay truncates t to its calendar date in t's own location and
// re-expresses it as midnight UTC so days compare with ==.
func CalendarDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
