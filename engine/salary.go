/*
salary.go - Salary and seasonal employment accrual

PURPOSE:
  Computes (ToDate, Projected) for salary and seasonal-employment
  streams. This is the densest calculator: it handles explicit seasonal
  ranges, payroll-calendar anchored counting, the days-elapsed fallback,
  and mid-year rate revisions.

TO-DATE PATHS (fixed fallback order):
  1. Explicit range (seasonal): clip [start, end] to the year and the
     reference date, then count elapsed periods in the window. Monthly
     counts calendar months spanned (month/year arithmetic, inclusive);
     weekly/biweekly/bimonthly count ceil(days/periodDays).
  2. Payroll anchor: delegate exact period counting to the external
     payroll calendar service.
  3. Days-elapsed estimate: completed months since January 1 for
     monthly, floor(days/periodDays) otherwise.

REVISIONS:
  A revision effective on or before the reference date splits the
  accrual at the effective date: periods before it accrue at the old
  rate, the rest at the new one. When the frequency is unchanged the
  window is counted once and the count is split - counting two
  sub-windows independently would round the boundary period into both
  halves. A frequency change makes the counts incomparable, so each
  half is then accrued on its own window.

PROJECTION:
  Full-year run rate at the current per-period amount and frequency,
  ignoring dates. An explicitly set AnnualAmount takes priority.

SEE ALSO:
  - payroll.go: The anchor delegation collaborator
  - insurance.go: The same revision split applied to weekly benefits
*/
package engine

// accrueSalary computes the accrual pair for a salary or
// seasonal-employment stream. Never returns an error: missing amounts
// or frequencies degrade to zero.
func accrueSalary(s IncomeStream, asOf Date, payroll PayrollCalendar) Accrual {
	rate, freq := currentSalaryRate(s, asOf)

	return Accrual{
		ToDate:    salaryToDate(s, asOf, payroll),
		Projected: salaryProjected(s, rate, freq),
	}
}

// currentSalaryRate resolves the per-period rate and frequency in
// effect at asOf, honoring an effective revision.
func currentSalaryRate(s IncomeStream, asOf Date) (Money, Frequency) {
	rate := moneyField(s.NetAmountPerPeriod)
	freq := s.Frequency
	if rev := s.Revision; rev != nil {
		if eff, ok := parseDateField(s.ID, "revision.effective_date", rev.EffectiveDate); ok && eff.BeforeOrEqual(asOf) {
			rate = moneyField(rev.NewAmount)
			if rev.NewFrequency != "" {
				freq = rev.NewFrequency
			}
		}
	}
	return rate, freq
}

func salaryProjected(s IncomeStream, rate Money, freq Frequency) Money {
	if s.AnnualAmount > 0 {
		return moneyField(s.AnnualAmount)
	}
	n := PeriodsPerYear(freq)
	if n == 0 || !rate.IsPositive() {
		return ZeroMoney()
	}
	return rate.MulInt(n)
}

// salaryToDate splits at an effective revision, pricing each side's
// share of the period count at its own rate.
func salaryToDate(s IncomeStream, asOf Date, payroll PayrollCalendar) Money {
	rev := s.Revision
	if rev == nil {
		return salaryWindowed(s, asOf, payroll)
	}
	eff, ok := parseDateField(s.ID, "revision.effective_date", rev.EffectiveDate)
	if !ok || eff.After(asOf) {
		// Not yet in effect (or unusable): accrue at the original rate.
		return salaryWindowed(s, asOf, payroll)
	}

	// The pre-revision share ends on the effective date for the
	// estimate paths (which treat asOf exclusively) and the day before
	// for end-inclusive seasonal ranges, so the boundary period belongs
	// to exactly one side.
	preEnd := eff
	if _, hasEnd := parseDateField(s.ID, "end_date", s.EndDate); hasEnd {
		preEnd = eff.AddDays(-1)
	}

	before := s
	before.Revision = nil

	sameFreq := rev.NewFrequency == "" || rev.NewFrequency == s.Frequency
	if sameFreq && s.PayAnchor == nil {
		// Count the window once and split the count. Counting the two
		// sub-windows independently would round the boundary period
		// into both halves; a same-rate revision must sum to the
		// unsplit accrual.
		total := salaryPeriods(before, asOf)
		preCount := 0
		if !preEnd.Before(StartOfYear(asOf.Year())) {
			preCount = salaryPeriods(before, preEnd)
		}
		if preCount > total {
			preCount = total
		}
		oldRate := moneyField(s.NetAmountPerPeriod)
		newRate := moneyField(rev.NewAmount)
		return oldRate.MulInt(preCount).Add(newRate.MulInt(total - preCount))
	}

	// A frequency change makes period counts incomparable across the
	// boundary, and an anchored stream delegates its counting, so each
	// half is accrued on its own window.
	pre := ZeroMoney()
	if !preEnd.Before(StartOfYear(asOf.Year())) {
		pre = salaryWindowed(before, preEnd, payroll)
	}

	after := s
	after.Revision = nil
	after.NetAmountPerPeriod = rev.NewAmount
	if rev.NewFrequency != "" {
		after.Frequency = rev.NewFrequency
	}
	after.StartDate = eff.String()
	if start, ok := parseDateField(s.ID, "start_date", s.StartDate); ok && start.After(eff) {
		after.StartDate = s.StartDate
	}
	// The payroll calendar reports year-to-date totals, so only the
	// pre-revision half can delegate to it.
	after.PayAnchor = nil
	post := salaryWindowed(after, asOf, payroll)

	return pre.Add(post)
}

// salaryWindowed accrues a single-rate stream over
// [year start, min(asOf, stream end, year end)], clipped to the stream
// start. A stream whose start is in the future contributes exactly 0.
func salaryWindowed(s IncomeStream, asOf Date, payroll PayrollCalendar) Money {
	rate := moneyField(s.NetAmountPerPeriod)
	if !rate.IsPositive() {
		return ZeroMoney()
	}

	// Regular salary: exact counting via the payroll calendar when an
	// anchor is configured.
	if _, hasEnd := parseDateField(s.ID, "end_date", s.EndDate); !hasEnd && s.PayAnchor != nil {
		if payroll != nil {
			return payroll.TotalEarnings(*s.PayAnchor, rate, asOf).ClampZero()
		}
		logFallback(s.ID, "pay_anchor", fallbackMissingAnchor)
	}

	return rate.MulInt(salaryPeriods(s, asOf))
}

// salaryPeriods counts the pay periods accrued through asOf, ignoring
// the payroll anchor: the explicit-range count when an end date exists,
// the days-elapsed estimate otherwise.
func salaryPeriods(s IncomeStream, asOf Date) int {
	yearStart := StartOfYear(asOf.Year())
	start, hasStart := parseDateField(s.ID, "start_date", s.StartDate)
	if hasStart && start.After(asOf) {
		return 0
	}
	end, hasEnd := parseDateField(s.ID, "end_date", s.EndDate)

	if hasEnd {
		if hasStart && end.Before(start) {
			logFallback(s.ID, "end_date", fallbackEmptyWindow)
			return 0
		}
		w := Window{Start: yearStart, End: MinDate(MinDate(end, asOf), EndOfYear(asOf.Year()))}
		if hasStart {
			w.Start = MaxDate(start, yearStart)
		}
		if w.Empty() {
			return 0
		}
		switch s.Frequency {
		case FreqMonthly:
			return MonthsSpanned(w.Start, w.End)
		case FreqWeekly, FreqBiweekly, FreqBimonthly:
			return ceilDiv(w.Days(), PeriodDays(s.Frequency))
		default:
			logFallback(s.ID, "frequency", fallbackMissingFrequency)
			return 0
		}
	}

	// Days-elapsed estimate since the start of the year.
	winStart := yearStart
	if hasStart {
		winStart = MaxDate(start, yearStart)
	}
	switch s.Frequency {
	case FreqMonthly:
		// Completed months only: in month m with a January start, m-1
		// monthly payments have landed.
		months := MonthsSpanned(winStart, asOf) - 1
		if months < 0 {
			months = 0
		}
		return months
	case FreqWeekly, FreqBiweekly, FreqBimonthly:
		days := DaysBetween(winStart, asOf)
		if days < 0 {
			days = 0
		}
		return days / PeriodDays(s.Frequency)
	default:
		return 0
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
