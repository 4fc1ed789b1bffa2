/*
engine.go - Dispatch and aggregation

PURPOSE:
  One entry point dispatching on stream type to the matching calculator,
  plus the aggregator that buckets per-stream accruals into income and
  benefit categories, per person and combined.

DETERMINISM:
  Compute is a pure function of (streams, benefit rates, asOf). The
  reference date is captured once per pass and threaded through every
  calculator, so a computation spanning midnight cannot mix days.
  Nothing is mutated; calling Compute twice with identical input yields
  identical totals, and concurrent read-only callers are safe.

BUCKETS:
  Work income:  salary, seasonal, self-employment, rental, dividend,
                other
  Benefits:     RRQ, OAS, employment insurance, private pensions.
                Manually entered pension streams whose description names
                RRQ/CPP or OAS/SV land in the matching government bucket
                instead of the private one.

SEE ALSO:
  - salary.go / insurance.go / pension.go / rental.go / flat.go /
    benefits.go: The per-type calculators
*/
package engine

import "strings"

// =============================================================================
// CATEGORIES
// =============================================================================

type Category string

const (
	// Work income
	CategorySalary         Category = "salary"
	CategorySeasonal       Category = "seasonal"
	CategorySelfEmployment Category = "self-employment"
	CategoryRental         Category = "rental"
	CategoryDividend       Category = "dividend"
	CategoryOther          Category = "other"

	// Benefits
	CategoryRRQ            Category = "rrq"
	CategoryOAS            Category = "oas"
	CategoryInsurance      Category = "employment-insurance"
	CategoryPrivatePension Category = "private-pension"
)

// IsBenefit reports whether the category belongs to the benefits group.
func (c Category) IsBenefit() bool {
	switch c {
	case CategoryRRQ, CategoryOAS, CategoryInsurance, CategoryPrivatePension:
		return true
	}
	return false
}

// =============================================================================
// INPUT / OUTPUT
// =============================================================================

// PersonInput is one person's share of the profile: their configured
// streams and their government benefit schedule snapshot.
type PersonInput struct {
	ID       string         `json:"id"`
	Streams  []IncomeStream `json:"streams,omitempty"`
	Benefits BenefitRates   `json:"benefits,omitempty"`
}

// ComputeInput is the full input of one computation pass. AsOf is the
// single reference snapshot; if zero it defaults to today, captured
// once before any calculator runs.
type ComputeInput struct {
	AsOf    Date
	Persons []PersonInput
}

// PersonSummary holds one person's bucketed totals.
type PersonSummary struct {
	PersonID   string
	Categories map[Category]Accrual
	Work       Accrual
	Benefits   Accrual
	Total      Accrual
}

// Summary is the side-effect-free result of one computation pass.
type Summary struct {
	AsOf     Date
	Persons  []PersonSummary
	Combined Accrual
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine runs the per-type calculators and aggregates their output.
// The zero-value Engine works; Payroll is optional and only consulted
// by anchored salary streams.
type Engine struct {
	Payroll PayrollCalendar
}

func NewEngine(payroll PayrollCalendar) *Engine {
	return &Engine{Payroll: payroll}
}

// AccrueStream runs the calculator matching the stream's type. Inactive
// streams contribute zero regardless of their other fields; unknown
// types are logged and contribute zero.
func (e *Engine) AccrueStream(s IncomeStream, asOf Date) Accrual {
	if !s.Active {
		return Accrual{}
	}
	switch s.Type {
	case StreamSalary, StreamSeasonal:
		return accrueSalary(s, asOf, e.Payroll)
	case StreamInsurance:
		return accrueInsurance(s, asOf)
	case StreamPension:
		return accruePension(s, asOf)
	case StreamRental:
		return accrueRental(s, asOf)
	case StreamDividend, StreamSelfEmployment, StreamOther:
		return accrueFlat(s, asOf)
	default:
		logFallback(s.ID, "type", fallbackUnknownType)
		return Accrual{}
	}
}

// Compute runs every applicable calculator over every active stream of
// every person and buckets the results. Inputs are never mutated.
func (e *Engine) Compute(in ComputeInput) Summary {
	asOf := in.AsOf
	if asOf.IsZero() {
		asOf = Today()
	}

	out := Summary{AsOf: asOf}
	for _, p := range in.Persons {
		ps := PersonSummary{
			PersonID:   p.ID,
			Categories: make(map[Category]Accrual),
		}

		for _, s := range p.Streams {
			acc := e.AccrueStream(s, asOf)
			ps.bucket(streamCategory(s), acc)
		}
		if rrq := accrueRRQ(p.Benefits, asOf); !rrq.IsZero() {
			ps.bucket(CategoryRRQ, rrq)
		}
		if oas := accrueOAS(p.Benefits, asOf); !oas.IsZero() {
			ps.bucket(CategoryOAS, oas)
		}

		out.Persons = append(out.Persons, ps)
		out.Combined = out.Combined.Add(ps.Total)
	}
	return out
}

func (ps *PersonSummary) bucket(c Category, acc Accrual) {
	if acc.IsZero() {
		return
	}
	ps.Categories[c] = ps.Categories[c].Add(acc)
	ps.Total = ps.Total.Add(acc)
	if c.IsBenefit() {
		ps.Benefits = ps.Benefits.Add(acc)
	} else {
		ps.Work = ps.Work.Add(acc)
	}
}

// streamCategory maps a stream to its reporting bucket. Private-pension
// streams are re-bucketed by description keywords: users often enter
// their RRQ or OAS benefit manually as a pension stream.
func streamCategory(s IncomeStream) Category {
	switch s.Type {
	case StreamSalary:
		return CategorySalary
	case StreamSeasonal:
		return CategorySeasonal
	case StreamInsurance:
		return CategoryInsurance
	case StreamPension:
		return pensionBucket(s.Description)
	case StreamRental:
		return CategoryRental
	case StreamDividend:
		return CategoryDividend
	case StreamSelfEmployment:
		return CategorySelfEmployment
	default:
		return CategoryOther
	}
}

func pensionBucket(description string) Category {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "rrq"), strings.Contains(d, "cpp"),
		strings.Contains(d, "régie des rentes"), strings.Contains(d, "regie des rentes"):
		return CategoryRRQ
	case strings.Contains(d, "oas"), strings.Contains(d, "pension de la sv"),
		strings.Contains(d, "vieillesse"), strings.Contains(d, "old age security"):
		return CategoryOAS
	default:
		return CategoryPrivatePension
	}
}
