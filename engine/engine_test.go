package engine_test

import (
	"testing"
	"time"

	"github.com/horizonplan/income-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) engine.Date {
	return engine.NewDate(year, month, day)
}

func assertMoney(t *testing.T, label string, got engine.Money, want float64) {
	t.Helper()
	if !got.Equal(engine.NewMoney(want)) {
		t.Errorf("%s: got %s, want %.2f", label, got, want)
	}
}

func assertAccrual(t *testing.T, label string, got engine.Accrual, toDate, projected float64) {
	t.Helper()
	assertMoney(t, label+".ToDate", got.ToDate, toDate)
	assertMoney(t, label+".Projected", got.Projected, projected)
}

func intPtr(n int) *int { return &n }

// fakePayroll is a canned payroll calendar for anchored salary tests.
type fakePayroll struct {
	total engine.Money
}

func (f fakePayroll) TotalEarnings(_ engine.AnchorConfig, _ engine.Money, _ engine.Date) engine.Money {
	return f.total
}

func accrue(s engine.IncomeStream, asOf engine.Date) engine.Accrual {
	return engine.NewEngine(nil).AccrueStream(s, asOf)
}

// =============================================================================
// DISPATCH TESTS
// =============================================================================

func TestAccrueStream_InactiveContributesNothing(t *testing.T) {
	// GIVEN: A fully configured salary stream marked inactive
	s := engine.IncomeStream{
		ID:                 "job",
		Type:               engine.StreamSalary,
		Active:             false,
		NetAmountPerPeriod: 3000,
		Frequency:          engine.FreqMonthly,
	}

	// WHEN: Accruing it
	acc := accrue(s, date(2025, time.August, 15))

	// THEN: Both sides are zero, projection included
	if !acc.IsZero() {
		t.Errorf("inactive stream accrued %s / %s, want zero", acc.ToDate, acc.Projected)
	}
}

func TestAccrueStream_UnknownTypeContributesNothing(t *testing.T) {
	s := engine.IncomeStream{ID: "x", Type: "lottery", Active: true, AnnualAmount: 50000}

	acc := accrue(s, date(2025, time.August, 15))

	if !acc.IsZero() {
		t.Errorf("unknown type accrued %s / %s, want zero", acc.ToDate, acc.Projected)
	}
}

// =============================================================================
// AGGREGATION TESTS
// =============================================================================

func TestCompute_WorkAndBenefitBuckets(t *testing.T) {
	// GIVEN: One person with a monthly salary and an EI benefit
	//   Salary: 3000/month  -> to-date 7*3000, projected 36000
	//   EI: 600 gross - 60 fed - 40 prov = 500 net/week, started Feb 3
	in := engine.ComputeInput{
		AsOf: date(2025, time.August, 15),
		Persons: []engine.PersonInput{{
			ID: "p1",
			Streams: []engine.IncomeStream{
				{ID: "job", Type: engine.StreamSalary, Active: true,
					NetAmountPerPeriod: 3000, Frequency: engine.FreqMonthly},
				{ID: "ei", Type: engine.StreamInsurance, Active: true,
					GrossWeekly: 600, FederalTaxWeekly: 60, ProvincialTaxWeekly: 40,
					StartDate: "2025-02-03"},
			},
		}},
	}

	// WHEN: Running one computation pass
	out := engine.NewEngine(nil).Compute(in)

	// THEN: Salary lands in work income, EI in benefits, total is the sum
	if len(out.Persons) != 1 {
		t.Fatalf("expected 1 person summary, got %d", len(out.Persons))
	}
	ps := out.Persons[0]

	// Feb 3 .. Aug 15 is 193 days -> 28 benefit weeks
	assertAccrual(t, "work", ps.Work, 21000, 36000)
	assertAccrual(t, "benefits", ps.Benefits, 14000, 26000)
	assertAccrual(t, "total", ps.Total, 35000, 62000)
	assertAccrual(t, "combined", out.Combined, 35000, 62000)

	assertAccrual(t, "categories[salary]", ps.Categories[engine.CategorySalary], 21000, 36000)
	assertAccrual(t, "categories[ei]", ps.Categories[engine.CategoryInsurance], 14000, 26000)
}

func TestCompute_CombinedSumsPersons(t *testing.T) {
	// GIVEN: Two persons with one dividend stream each
	in := engine.ComputeInput{
		AsOf: date(2025, time.July, 1),
		Persons: []engine.PersonInput{
			{ID: "p1", Streams: []engine.IncomeStream{
				{ID: "d1", Type: engine.StreamDividend, Active: true, AnnualAmount: 1200}}},
			{ID: "p2", Streams: []engine.IncomeStream{
				{ID: "d2", Type: engine.StreamDividend, Active: true, AnnualAmount: 2400}}},
		},
	}

	out := engine.NewEngine(nil).Compute(in)

	// THEN: 6 completed months of 100 and 200 respectively
	assertAccrual(t, "p1", out.Persons[0].Total, 600, 1200)
	assertAccrual(t, "p2", out.Persons[1].Total, 1200, 2400)
	assertAccrual(t, "combined", out.Combined, 1800, 3600)
}

func TestCompute_BenefitRatesFeedRRQAndOAS(t *testing.T) {
	// GIVEN: A person with no streams, only a benefit schedule
	in := engine.ComputeInput{
		AsOf: date(2025, time.August, 15),
		Persons: []engine.PersonInput{{
			ID:       "p1",
			Benefits: engine.BenefitRates{RRQMonthly: 850, OASPeriode1: 600, OASPeriode2: 650},
		}},
	}

	out := engine.NewEngine(nil).Compute(in)

	ps := out.Persons[0]
	assertAccrual(t, "rrq", ps.Categories[engine.CategoryRRQ], 5950, 10200)
	assertAccrual(t, "oas", ps.Categories[engine.CategoryOAS], 4250, 7500)
	assertAccrual(t, "benefits", ps.Benefits, 10200, 17700)
	if !ps.Work.IsZero() {
		t.Errorf("work bucket should stay empty, got %s", ps.Work.ToDate)
	}
}

func TestCompute_PensionKeywordRebucketing(t *testing.T) {
	// GIVEN: Three manually entered pension streams; two of them describe
	// government benefits and must land in the matching bucket
	mk := func(id, desc string) engine.IncomeStream {
		return engine.IncomeStream{
			ID: id, Type: engine.StreamPension, Description: desc, Active: true,
			AmountPerPeriod: 100, Frequency: engine.FreqMonthly, PaymentDayOfMonth: 1,
		}
	}
	in := engine.ComputeInput{
		AsOf: date(2025, time.May, 10),
		Persons: []engine.PersonInput{{
			ID: "p1",
			Streams: []engine.IncomeStream{
				mk("a", "RRQ - Retraite Québec"),
				mk("b", "Pension de la SV"),
				mk("c", "Employer plan"),
			},
		}},
	}

	out := engine.NewEngine(nil).Compute(in)

	// Each pays on the 1st: Jan..May due by May 10 -> 5 payments of 100
	ps := out.Persons[0]
	assertAccrual(t, "rrq bucket", ps.Categories[engine.CategoryRRQ], 500, 1200)
	assertAccrual(t, "oas bucket", ps.Categories[engine.CategoryOAS], 500, 1200)
	assertAccrual(t, "private bucket", ps.Categories[engine.CategoryPrivatePension], 500, 1200)
}

func TestCompute_Idempotent(t *testing.T) {
	// GIVEN: A mixed profile
	in := engine.ComputeInput{
		AsOf: date(2025, time.August, 15),
		Persons: []engine.PersonInput{{
			ID: "p1",
			Streams: []engine.IncomeStream{
				{ID: "job", Type: engine.StreamSalary, Active: true,
					NetAmountPerPeriod: 1900, Frequency: engine.FreqBiweekly},
				{ID: "chalet", Type: engine.StreamRental, Active: true,
					AmountPerPeriod: 350, Frequency: engine.FreqWeekend,
					SeasonStartDate: "2025-05-01", SeasonEndDate: "2025-09-30"},
			},
			Benefits: engine.BenefitRates{RRQMonthly: 850},
		}},
	}
	eng := engine.NewEngine(nil)

	// WHEN: Computing twice with identical input
	first := eng.Compute(in)
	second := eng.Compute(in)

	// THEN: Every total matches exactly
	if !first.Combined.ToDate.Equal(second.Combined.ToDate) ||
		!first.Combined.Projected.Equal(second.Combined.Projected) {
		t.Errorf("combined differs across passes: %s/%s vs %s/%s",
			first.Combined.ToDate, first.Combined.Projected,
			second.Combined.ToDate, second.Combined.Projected)
	}
	for c, acc := range first.Persons[0].Categories {
		other := second.Persons[0].Categories[c]
		if !acc.ToDate.Equal(other.ToDate) || !acc.Projected.Equal(other.Projected) {
			t.Errorf("category %s differs across passes", c)
		}
	}
}

func TestCompute_ZeroAsOfSnapshotsToday(t *testing.T) {
	out := engine.NewEngine(nil).Compute(engine.ComputeInput{})

	if !out.AsOf.Equal(engine.Today()) {
		t.Errorf("expected today's snapshot, got %s", out.AsOf)
	}
}
