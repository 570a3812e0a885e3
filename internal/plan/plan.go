package plan

import (
	"errors"
	"time"
)

var ErrInvalidPlan = errors.New("invalid plan selected")

// Plan is a subscription tier with a fixed price and duration.
type Plan struct {
	ID     string
	Price  int // rupees
	Months int
}

// PaisePrice is the order amount in the smallest currency unit.
func (p Plan) PaisePrice() int {
	return p.Price * 100
}

// catalog is read-only after init; no locking needed.
var catalog = map[string]Plan{
	"3months": {ID: "3months", Price: 2000, Months: 3},
	"6months": {ID: "6months", Price: 3000, Months: 6},
	"1year":   {ID: "1year", Price: 5000, Months: 12},
}

func Lookup(id string) (Plan, bool) {
	p, ok := catalog[id]
	return p, ok
}

// Window computes the subscription window starting at now.
func (p Plan) Window(now time.Time) (start, end time.Time) {
	return now, AddMonths(now, p.Months)
}

// AddMonths adds n calendar months to t, clamping to the last valid day of
// the target month instead of letting the date overflow (Jan 31 + 1 month
// is Feb 28, or Feb 29 in a leap year, never Mar 3).
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
