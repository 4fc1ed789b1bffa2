/*
insurance.go - Employment insurance accrual

PURPOSE:
  Employment insurance pays a net weekly benefit (gross minus federal
  and provincial withholding) for at most MaxWeeks weeks. To-date counts
  the weeks actually elapsed inside the eligibility window; projection
  is capped by eligibility, not by elapsed time.

WEEK COUNTING:
  The effective window is
    [max(startDate, Jan 1), min(asOf, Dec 31, startDate + MaxWeeks*7d)]
  and weeksElapsed = floor(daysInWindow/7) + 1: the first benefit week
  counts as soon as the window opens. A manual WeeksUsedOverride, when
  lower, wins over the elapsed count; MaxWeeks caps everything.

SEE ALSO:
  - salary.go: The revision split this calculator reuses
*/
package engine

// accrueInsurance computes the accrual pair for an employment-insurance
// stream.
func accrueInsurance(s IncomeStream, asOf Date) Accrual {
	net := insuranceNetWeekly(s)
	if !net.IsPositive() {
		return Accrual{}
	}

	// Projection: capped by eligibility, never past 52 weeks.
	projWeeks := 52
	if s.MaxWeeks > 0 && s.MaxWeeks < 52 {
		projWeeks = s.MaxWeeks
	}
	netNow := net
	rev := s.Revision
	var revEff Date
	revActive := false
	if rev != nil {
		if eff, ok := parseDateField(s.ID, "revision.effective_date", rev.EffectiveDate); ok && eff.BeforeOrEqual(asOf) {
			revEff = eff
			revActive = true
			netNow = moneyField(rev.NewAmount)
		}
	}

	acc := Accrual{Projected: netNow.MulInt(projWeeks)}

	// Effective window.
	yearStart := StartOfYear(asOf.Year())
	start, hasStart := parseDateField(s.ID, "start_date", s.StartDate)
	if !hasStart {
		start = yearStart
	}
	if start.After(asOf) {
		return acc
	}
	winStart := MaxDate(start, yearStart)
	winEnd := MinDate(asOf, EndOfYear(asOf.Year()))
	if s.MaxWeeks > 0 {
		winEnd = MinDate(winEnd, start.AddDays(s.MaxWeeks*7))
	}
	if winEnd.Before(winStart) {
		return acc
	}

	weeksElapsed := DaysBetween(winStart, winEnd)/7 + 1
	if weeksElapsed < 0 {
		weeksElapsed = 0
	}
	weeksUsed := weeksElapsed
	if ovr := s.WeeksUsedOverride; ovr != nil && *ovr < weeksUsed {
		weeksUsed = *ovr
		if weeksUsed < 0 {
			weeksUsed = 0
		}
	}
	if s.MaxWeeks > 0 && weeksUsed > s.MaxWeeks {
		weeksUsed = s.MaxWeeks
	}

	if !revActive {
		acc.ToDate = net.MulInt(weeksUsed)
		return acc
	}

	// Revision split: weeks before the effective date accrue at the old
	// net rate, the remainder at the new one. The combined count never
	// exceeds weeksUsed, so the eligibility cap holds across the split.
	weeksBefore := 0
	if preEnd := MinDate(winEnd, revEff.AddDays(-1)); !preEnd.Before(winStart) {
		weeksBefore = DaysBetween(winStart, preEnd)/7 + 1
	}
	if weeksBefore > weeksUsed {
		weeksBefore = weeksUsed
	}
	weeksAfter := weeksUsed - weeksBefore

	acc.ToDate = net.MulInt(weeksBefore).Add(netNow.MulInt(weeksAfter))
	return acc
}

// insuranceNetWeekly is the weekly benefit net of withholding, clamped
// at zero. A non-positive net disables the stream entirely.
func insuranceNetWeekly(s IncomeStream) Money {
	net := NewMoney(s.GrossWeekly).
		Sub(NewMoney(s.FederalTaxWeekly)).
		Sub(NewMoney(s.ProvincialTaxWeekly))
	return net.ClampZero()
}
