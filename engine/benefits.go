/*
benefits.go - Government benefit accrual (RRQ / OAS)

PURPOSE:
  RRQ (Quebec Pension Plan / CPP) and OAS (Old Age Security / SV) are
  structurally different from personal income streams: the rates come
  from an external benefit schedule, not from the stream record.

  RRQ pays a flat monthly amount. OAS publishes two semiannual rates,
  Periode1 for January-June and Periode2 for July-December; the accrual
  sums each half-year's completed months at its own rate. When the
  split schedule is absent, OAS falls back to a flat monthly rate.

MONTH COUNTING:
  monthsCompleted = max(0, currentMonth - 1): the current month's
  payment has not landed yet. August 15 means 7 completed months, so
  with Periode1=600 and Periode2=650 OAS to-date is 6*600 + 1*650.
*/
package engine

// accrueRRQ computes the accrual pair for the RRQ/CPP benefit.
func accrueRRQ(rates BenefitRates, asOf Date) Accrual {
	monthly := moneyField(rates.RRQMonthly)
	if !monthly.IsPositive() {
		return Accrual{}
	}
	return Accrual{
		ToDate:    monthly.MulInt(monthsCompleted(asOf)),
		Projected: monthly.MulInt(12),
	}
}

// accrueOAS computes the accrual pair for the OAS/SV benefit using the
// split-period schedule, falling back to a flat monthly rate.
func accrueOAS(rates BenefitRates, asOf Date) Accrual {
	months := monthsCompleted(asOf)

	if rates.HasOASSplit() {
		p1 := moneyField(rates.OASPeriode1)
		p2 := moneyField(rates.OASPeriode2)

		monthsJanJun := months
		if monthsJanJun > 6 {
			monthsJanJun = 6
		}
		toDate := p1.MulInt(monthsJanJun)
		if months > 6 {
			monthsJulDec := months - 6
			if monthsJulDec > 6 {
				monthsJulDec = 6
			}
			toDate = toDate.Add(p2.MulInt(monthsJulDec))
		}
		return Accrual{
			ToDate:    toDate,
			Projected: p1.MulInt(6).Add(p2.MulInt(6)),
		}
	}

	flat := moneyField(rates.OASMonthly)
	if !flat.IsPositive() {
		return Accrual{}
	}
	return Accrual{
		ToDate:    flat.MulInt(months),
		Projected: flat.MulInt(12),
	}
}
