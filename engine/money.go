/*
Package engine computes income accruals and projections for a set of
income streams.

PURPOSE:
  Given the income streams configured in a household profile (salary,
  seasonal employment, employment insurance, private pensions, government
  pensions, rental income, dividends, self-employment, other) and a single
  reference date, the engine computes per stream:
    - ToDate:    the amount accrued since January 1 of the reference year
    - Projected: the amount a full year would yield at the current rate
  and aggregates the results into per-person and combined totals.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A currency quantity backed by decimal.Decimal
  - Accrual: The (ToDate, Projected) pair every calculator produces

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere, no floating-point drift
  2. Non-negativity: amounts clamp at zero, never go negative
  3. Determinism: the reference date is an explicit parameter, captured
     once per computation pass and threaded through every calculator
  4. Degradation over failure: calculators always return an Accrual,
     even on worst-case input

USAGE:
  eng := engine.NewEngine(nil)
  summary := eng.Compute(engine.ComputeInput{
      AsOf: engine.NewDate(2025, time.August, 15),
      Persons: []engine.PersonInput{{ID: "p1", Streams: streams}},
  })

SEE ALSO:
  - stream.go: The IncomeStream record and benefit rates
  - engine.go: Dispatch and aggregation
  - fallback.go: The shared degradation policy
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency quantity
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

// moneyField converts a raw per-period or annual amount from a stream
// record. Negative values clamp to zero: amounts are never negative.
func moneyField(value float64) Money {
	if value < 0 {
		return ZeroMoney()
	}
	return NewMoney(value)
}

func (m Money) Add(b Money) Money { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Mul(s decimal.Decimal) Money { return Money{Value: m.Value.Mul(s)} }
func (m Money) MulInt(n int) Money { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) Div(s decimal.Decimal) Money { return Money{Value: m.Value.Div(s)} }
func (m Money) IsZero() bool { return m.Value.IsZero() }
func (m Money) IsNegative() bool { return m.Value.IsNegative() }
func (m Money) IsPositive() bool { return m.Value.IsPositive() }
func (m Money) Equal(b Money) bool { return m.Value.Equal(b.Value) }

// ClampZero floors the amount at zero.
func (m Money) ClampZero() Money {
	if m.Value.IsNegative() {
		return ZeroMoney()
	}
	return m
}

func (m Money) Float64() float64 { f, _ := m.Value.Float64(); return f }
func (m Money) String() string { return m.Value.StringFixed(2) }

// =============================================================================
// ACCRUAL - The output pair of every calculator
// =============================================================================

// Accrual is the result of running one calculator over one stream:
// the year-to-date amount and the projected full-year amount.
// The zero value means "contributes nothing".
type Accrual struct {
	ToDate    Money
	Projected Money
}

func (a Accrual) Add(b Accrual) Accrual {
	return Accrual{
		ToDate:    a.ToDate.Add(b.ToDate),
		Projected: a.Projected.Add(b.Projected),
	}
}

func (a Accrual) IsZero() bool { return a.ToDate.IsZero() && a.Projected.IsZero() }
