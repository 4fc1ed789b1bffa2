package engine

import "github.com/shopspring/decimal"

var twelve = decimal.NewFromInt(12)

// accrueFlat handles the no-schedule variants (dividend,
// self-employment, other): a single annual figure, prorated by
// completed months for the to-date side.
func accrueFlat(s IncomeStream, asOf Date) Accrual {
	annual := flatAnnual(s)
	if !annual.IsPositive() {
		return Accrual{}
	}
	months := monthsCompleted(asOf)
	return Accrual{
		ToDate:    annual.Div(twelve).MulInt(months),
		Projected: annual,
	}
}

// flatAnnual resolves the annual figure from whichever amount field the
// profile editor populated.
func flatAnnual(s IncomeStream) Money {
	switch {
	case s.AnnualAmount > 0:
		return moneyField(s.AnnualAmount)
	case s.MonthlyAmount > 0:
		return moneyField(s.MonthlyAmount).MulInt(12)
	case s.WeeklyAmount > 0:
		return moneyField(s.WeeklyAmount).MulInt(52)
	default:
		return ZeroMoney()
	}
}

// monthsCompleted is the number of whole calendar months finished
// before asOf within its year: the payment for the current month has
// not yet landed, so August 15 counts 7 completed months.
func monthsCompleted(asOf Date) int {
	m := int(asOf.Month()) - 1
	if m < 0 {
		return 0
	}
	return m
}
