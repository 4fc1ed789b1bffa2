package engine

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity civil date
// =============================================================================

// Date represents a calendar date with day granularity. Stream records
// carry dates as "2006-01-02" strings owned by the profile store; they
// are parsed into Date inside the calculators so that malformed input
// degrades instead of failing upstream.
type Date struct {
	y int
	m time.Month
	d int
}

const dateFormat = "2006-01-02"

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{y: t.Year(), m: t.Month(), d: t.Day()}
}

// ParseDate parses a "2006-01-02" date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// MustDate is like ParseDate but panics on error. Test helper.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Today returns the current date. Production callers should capture it
// once per computation pass and thread it through every calculator.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Comparison
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool { return d.time().After(x.time()) }
func (d Date) Equal(x Date) bool { return d == x }
func (d Date) BeforeOrEqual(x Date) bool { return !d.After(x) }
func (d Date) AfterOrEqual(x Date) bool { return !d.Before(x) }
func (d Date) IsZero() bool { return d == Date{} }

// Arithmetic
func (d Date) AddDays(n int) Date {
	t := d.time().AddDate(0, 0, n)
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Properties
func (d Date) Year() int { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int { return d.d }
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

func (d Date) String() string { return d.time().Format(dateFormat) }

func MinDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

func MaxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

// =============================================================================
// DATE UTILITIES
// =============================================================================

// DaysBetween returns the number of days from a to b (exclusive of b).
func DaysBetween(a, b Date) int { return int(b.time().Sub(a.time()).Hours() / 24) }

func StartOfYear(year int) Date { return NewDate(year, time.January, 1) }
func EndOfYear(year int) Date { return NewDate(year, time.December, 31) }

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}

// MonthsSpanned counts the calendar months touched by [a, b], inclusive.
// March 28 to April 2 spans two months even though only six days elapse.
// Month/year arithmetic, not day-count division, so month boundaries
// cannot drift.
func MonthsSpanned(a, b Date) int {
	if b.Before(a) {
		return 0
	}
	return (b.y-a.y)*12 + int(b.m) - int(a.m) + 1
}

// =============================================================================
// WINDOW - Effective accrual range after clipping
// =============================================================================

// Window is the date range actually used for accrual, after clipping to
// stream bounds, year bounds, and the reference date.
type Window struct {
	Start Date
	End   Date
}

// Empty reports whether the window contains no days. Inverted ranges
// (end before start) are treated as empty, never as an error.
func (w Window) Empty() bool { return w.End.Before(w.Start) }

// Days returns the inclusive day count of the window.
func (w Window) Days() int {
	if w.Empty() {
		return 0
	}
	return DaysBetween(w.Start, w.End) + 1
}

func (w Window) String() string { return "[" + w.Start.String() + ", " + w.End.String() + "]" }
