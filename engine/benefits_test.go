package engine_test

import (
	"testing"
	"time"

	"github.com/horizonplan/income-engine/engine"
)

func rrq(rates engine.BenefitRates, asOf engine.Date) engine.Accrual {
	out := engine.NewEngine(nil).Compute(engine.ComputeInput{
		AsOf:    asOf,
		Persons: []engine.PersonInput{{ID: "p", Benefits: rates}},
	})
	return out.Persons[0].Categories[engine.CategoryRRQ]
}

func oas(rates engine.BenefitRates, asOf engine.Date) engine.Accrual {
	out := engine.NewEngine(nil).Compute(engine.ComputeInput{
		AsOf:    asOf,
		Persons: []engine.PersonInput{{ID: "p", Benefits: rates}},
	})
	return out.Persons[0].Categories[engine.CategoryOAS]
}

// =============================================================================
// RRQ
// =============================================================================

func TestRRQ_MonthsCompleted(t *testing.T) {
	// GIVEN: A monthly RRQ rate of 850
	rates := engine.BenefitRates{RRQMonthly: 850}

	// WHEN: Accruing on March 10
	acc := rrq(rates, date(2025, time.March, 10))

	// THEN: January and February landed
	assertAccrual(t, "rrq", acc, 1700, 10200)
}

func TestRRQ_JanuaryAccruesNothing(t *testing.T) {
	acc := rrq(engine.BenefitRates{RRQMonthly: 850}, date(2025, time.January, 15))

	assertAccrual(t, "rrq", acc, 0, 10200)
}

// =============================================================================
// OAS - Split-period schedule
// =============================================================================

func TestOAS_SplitRate_AugustMidMonth(t *testing.T) {
	// GIVEN: Periode1 = 600 (Jan-Jun), Periode2 = 650 (Jul-Dec)
	rates := engine.BenefitRates{OASPeriode1: 600, OASPeriode2: 650}

	// WHEN: Accruing on August 15 (7 completed months)
	acc := oas(rates, date(2025, time.August, 15))

	// THEN: 6 months at 600 plus 1 at 650
	assertAccrual(t, "oas", acc, 4250, 7500)
}

func TestOAS_SplitRate_FirstHalfOnly(t *testing.T) {
	rates := engine.BenefitRates{OASPeriode1: 600, OASPeriode2: 650}

	acc := oas(rates, date(2025, time.April, 10))

	// 3 completed months, all in the first half
	assertAccrual(t, "oas", acc, 1800, 7500)
}

func TestOAS_SplitRate_FullYear(t *testing.T) {
	rates := engine.BenefitRates{OASPeriode1: 600, OASPeriode2: 650}

	acc := oas(rates, date(2025, time.December, 31))

	// 11 completed months: 6 at 600, 5 at 650
	assertAccrual(t, "oas", acc, 6850, 7500)
}

func TestOAS_FlatFallback(t *testing.T) {
	// GIVEN: Only the flat monthly rate is published
	rates := engine.BenefitRates{OASMonthly: 640}

	acc := oas(rates, date(2025, time.March, 20))

	assertAccrual(t, "oas", acc, 1280, 7680)
}

func TestBenefits_NoRatesContributeNothing(t *testing.T) {
	out := engine.NewEngine(nil).Compute(engine.ComputeInput{
		AsOf:    date(2025, time.August, 15),
		Persons: []engine.PersonInput{{ID: "p"}},
	})

	ps := out.Persons[0]
	if len(ps.Categories) != 0 {
		t.Errorf("expected no buckets without rates, got %d", len(ps.Categories))
	}
	if !ps.Total.IsZero() {
		t.Errorf("expected zero total, got %s / %s", ps.Total.ToDate, ps.Total.Projected)
	}
}
