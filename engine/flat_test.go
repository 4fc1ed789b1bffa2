package engine_test

import (
	"testing"
	"time"

	"github.com/horizonplan/income-engine/engine"
)

func TestFlat_DividendProratedByMonths(t *testing.T) {
	// GIVEN: 6000/year in dividends
	s := engine.IncomeStream{
		ID: "div", Type: engine.StreamDividend, Active: true,
		AnnualAmount: 6000,
	}

	// WHEN: Accruing on August 15 (7 completed months)
	acc := accrue(s, date(2025, time.August, 15))

	// THEN: 7/12 of the annual figure
	assertAccrual(t, "dividend", acc, 3500, 6000)
}

func TestFlat_MonthlyAmountAnnualized(t *testing.T) {
	// GIVEN: Self-employment recorded as 800/month
	s := engine.IncomeStream{
		ID: "side", Type: engine.StreamSelfEmployment, Active: true,
		MonthlyAmount: 800,
	}

	acc := accrue(s, date(2025, time.August, 15))

	// 800 * 12 = 9600 annual, prorated to 7 months
	assertAccrual(t, "self-employment", acc, 5600, 9600)
}

func TestFlat_WeeklyAmountAnnualized(t *testing.T) {
	s := engine.IncomeStream{
		ID: "misc", Type: engine.StreamOther, Active: true,
		WeeklyAmount: 100,
	}

	acc := accrue(s, date(2025, time.August, 15))

	assertMoney(t, "other.Projected", acc.Projected, 5200)
}

func TestFlat_AnnualAmountWinsOverOtherFields(t *testing.T) {
	// GIVEN: Several amount fields populated at once
	s := engine.IncomeStream{
		ID: "div", Type: engine.StreamDividend, Active: true,
		AnnualAmount: 6000, MonthlyAmount: 999, WeeklyAmount: 999,
	}

	acc := accrue(s, date(2025, time.August, 15))

	assertMoney(t, "dividend.Projected", acc.Projected, 6000)
}

func TestFlat_NoAmountContributesNothing(t *testing.T) {
	s := engine.IncomeStream{ID: "div", Type: engine.StreamDividend, Active: true}

	acc := accrue(s, date(2025, time.August, 15))

	if !acc.IsZero() {
		t.Errorf("empty stream accrued %s / %s, want zero", acc.ToDate, acc.Projected)
	}
}
