/*
rental.go - Rental income accrual

PURPOSE:
  Rental streams rent out a property daily, per weekend, weekly, or
  monthly, optionally only inside an explicit season. The calculator
  tries three paths in a fixed order so results stay reproducible:

    1. Season-range path: count periods between the season start and
       min(asOf, season end), inclusive day math.
    2. Month-elapsed heuristic (no season, or season dates unusable):
       completed months since January 1 times 4.33 rentable weeks (or
       one monthly payment) per month. Intentionally coarser.
    3. Raw annual amount, when no per-period rate exists either.

WEEKEND COUNTING:
  A weekend rental counts floor(days/7) full weeks plus one more
  weekend when the trailing partial week holds 3 or more days. Windows
  of up to 3 days count as exactly one weekend: a Friday-to-Sunday
  booking is one rented weekend even though no full week elapsed.
  TestRentalWeekend_ThreeDayWindow pins the 3-day boundary.
*/
package engine

import "github.com/shopspring/decimal"

var weeksPerMonth = decimal.NewFromFloat(4.33)

// accrueRental computes the accrual pair for a rental stream.
func accrueRental(s IncomeStream, asOf Date) Accrual {
	rate := moneyField(s.AmountPerPeriod)

	seasonStart, okStart := parseDateField(s.ID, "season_start_date", s.SeasonStartDate)
	seasonEnd, okEnd := parseDateField(s.ID, "season_end_date", s.SeasonEndDate)
	hasSeason := okStart && okEnd

	acc := Accrual{Projected: rentalProjected(s, rate, seasonStart, seasonEnd, hasSeason)}

	if !rate.IsPositive() {
		// No per-period rate: the raw annual amount is all we have.
		acc.ToDate = acc.Projected
		return acc
	}

	if hasSeason {
		if seasonEnd.Before(seasonStart) {
			logFallback(s.ID, "season_end_date", fallbackEmptyWindow)
			return acc
		}
		if asOf.Before(seasonStart) {
			return acc
		}
		effEnd := MinDate(asOf, seasonEnd)
		days := DaysBetween(seasonStart, effEnd) + 1
		acc.ToDate = rate.MulInt(rentalPeriods(s.Frequency, seasonStart, effEnd, days))
		return acc
	}

	// Month-elapsed heuristic.
	months := monthsCompleted(asOf)
	switch s.Frequency {
	case FreqDaily:
		// Day counting needs no parsed dates; use actual elapsed days.
		acc.ToDate = rate.MulInt(DaysBetween(StartOfYear(asOf.Year()), asOf))
	case FreqMonthly:
		acc.ToDate = rate.MulInt(months)
	default: // weekly, weekend
		acc.ToDate = rate.Mul(weeksPerMonth.Mul(decimal.NewFromInt(int64(months))))
	}
	return acc
}

// rentalPeriods counts rented periods in the inclusive window
// [start, end] holding days days.
func rentalPeriods(freq Frequency, start, end Date, days int) int {
	switch freq {
	case FreqDaily:
		return days
	case FreqWeekly:
		return ceilDiv(days, 7)
	case FreqMonthly:
		return MonthsSpanned(start, end)
	case FreqWeekend:
		if days <= 3 {
			return 1
		}
		n := days / 7
		if days%7 >= 3 {
			n++
		}
		return n
	default:
		return 0
	}
}

// rentalProjected annualizes the stream. A seasonal property cannot
// yield more than its season in a year, so the projection covers the
// full season when one is configured.
func rentalProjected(s IncomeStream, rate Money, seasonStart, seasonEnd Date, hasSeason bool) Money {
	if hasSeason && !seasonEnd.Before(seasonStart) && rate.IsPositive() {
		days := DaysBetween(seasonStart, seasonEnd) + 1
		return rate.MulInt(rentalPeriods(s.Frequency, seasonStart, seasonEnd, days))
	}
	if s.AnnualAmount > 0 {
		return moneyField(s.AnnualAmount)
	}
	if !rate.IsPositive() {
		return ZeroMoney()
	}
	return rate.MulInt(PeriodsPerYear(s.Frequency))
}
