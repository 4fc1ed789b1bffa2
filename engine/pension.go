/*
pension.go - Private pension accrual

PURPOSE:
  Private pensions pay a fixed amount on a fixed day of the month, every
  1/3/6/12 months. To-date counts the payments actually due between the
  stream start and the reference date, stepping through real pay dates
  instead of dividing elapsed days.

PAY-DAY STEPPING:
  lastDuePayment is the most recent pay-day on or before asOf: this
  month's pay-day, or the previous period's if it has not occurred yet.
  Counting starts from the first pay-day on or after the effective start
  and advances by the payment stride until passing lastDuePayment.
  A PaymentDayOfMonth of 31 clamps to each month's last day rather than
  spilling into the next month.
*/
package engine

import "time"

// accruePension computes the accrual pair for a private-pension stream.
func accruePension(s IncomeStream, asOf Date) Accrual {
	rate := moneyField(s.AmountPerPeriod)
	if !rate.IsPositive() {
		return Accrual{}
	}

	acc := Accrual{Projected: rate.MulInt(PeriodsPerYear(s.Frequency))}

	payDay := s.PaymentDayOfMonth
	if payDay < 1 {
		payDay = 1
	}
	if payDay > 31 {
		payDay = 31
	}

	yearStart := StartOfYear(asOf.Year())
	start, hasStart := parseDateField(s.ID, "start_date", s.StartDate)
	if !hasStart {
		// Long-running pension with no recorded start: accrue from the
		// start of the year.
		start = yearStart
	}
	if start.After(asOf) {
		return acc
	}
	effStart := MaxDate(start, yearStart)

	// Most recent pay-day on or before asOf.
	lastDue := dayOfMonthClamped(asOf.Year(), int(asOf.Month()), payDay)
	if lastDue.After(asOf) {
		lastDue = dayOfMonthClamped(asOf.Year(), int(asOf.Month())-1, payDay)
	}

	// First pay-day on or after the effective start.
	firstY, firstM := effStart.Year(), int(effStart.Month())
	if dayOfMonthClamped(firstY, firstM, payDay).Before(effStart) {
		firstM++
	}

	// Step whole months from the first due month so a clamped pay-day
	// (the 31st in February) doesn't drift the later payments.
	step := monthsPerStep(s.Frequency)
	count := 0
	for i := 0; ; i++ {
		p := dayOfMonthClamped(firstY, firstM+i*step, payDay)
		if p.After(lastDue) {
			break
		}
		count++
	}

	acc.ToDate = rate.MulInt(count)
	return acc
}

// dayOfMonthClamped builds a date in the given month, clamping the day
// to the month's length.
func dayOfMonthClamped(year, month, day int) Date {
	base := NewDate(year, time.Month(month), 1)
	if last := DaysInMonth(base.Year(), base.Month()); day > last {
		day = last
	}
	return NewDate(base.Year(), base.Month(), day)
}
