package engine_test

import (
	"testing"
	"time"

	"github.com/horizonplan/income-engine/engine"
)

func TestParseDate(t *testing.T) {
	d, err := engine.ParseDate("2025-08-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(date(2025, time.August, 15)) {
		t.Errorf("got %s, want 2025-08-15", d)
	}

	for _, bad := range []string{"", "08/15/2025", "2025-13-01", "tomorrow"} {
		if _, err := engine.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestMustDate(t *testing.T) {
	if !engine.MustDate("2025-08-15").Equal(date(2025, time.August, 15)) {
		t.Error("MustDate should parse like ParseDate")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustDate should panic on a malformed date")
		}
	}()
	engine.MustDate("08/15/2025")
}

func TestMonthsSpanned(t *testing.T) {
	cases := []struct {
		a, b engine.Date
		want int
	}{
		// Six days across a month boundary still span two months
		{date(2025, time.March, 28), date(2025, time.April, 2), 2},
		{date(2025, time.January, 1), date(2025, time.August, 15), 8},
		{date(2025, time.May, 10), date(2025, time.May, 10), 1},
		{date(2024, time.November, 1), date(2025, time.February, 1), 4},
		// Inverted ranges span nothing
		{date(2025, time.June, 1), date(2025, time.May, 1), 0},
	}
	for _, tc := range cases {
		if got := engine.MonthsSpanned(tc.a, tc.b); got != tc.want {
			t.Errorf("MonthsSpanned(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDaysBetween_ExclusiveOfEnd(t *testing.T) {
	a := date(2025, time.January, 1)
	if got := engine.DaysBetween(a, a); got != 0 {
		t.Errorf("same day: got %d, want 0", got)
	}
	if got := engine.DaysBetween(a, date(2025, time.January, 8)); got != 7 {
		t.Errorf("one week: got %d, want 7", got)
	}
	if got := engine.DaysBetween(a, date(2025, time.March, 1)); got != 59 {
		t.Errorf("jan+feb: got %d, want 59", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := engine.DaysInMonth(2025, time.February); got != 28 {
		t.Errorf("feb 2025: got %d, want 28", got)
	}
	if got := engine.DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("feb 2024: got %d, want 29", got)
	}
	if got := engine.DaysInMonth(2025, time.December); got != 31 {
		t.Errorf("dec 2025: got %d, want 31", got)
	}
}

func TestWindow_InclusiveDays(t *testing.T) {
	w := engine.Window{Start: date(2025, time.June, 6), End: date(2025, time.June, 8)}
	if w.Empty() {
		t.Fatal("window should not be empty")
	}
	if got := w.Days(); got != 3 {
		t.Errorf("got %d days, want 3", got)
	}

	inverted := engine.Window{Start: date(2025, time.June, 8), End: date(2025, time.June, 6)}
	if !inverted.Empty() {
		t.Error("inverted window should be empty")
	}
	if got := inverted.Days(); got != 0 {
		t.Errorf("inverted window has %d days, want 0", got)
	}
}
