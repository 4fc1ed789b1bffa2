/*
stream.go - The income stream record and government benefit rates

PURPOSE:
  IncomeStream is the central entity: one configured income source,
  tagged by StreamType, carrying every field relevant to its variant.
  Records are created and edited by the surrounding profile editor and
  persisted in the user's profile; the engine only reads them.

VARIANTS AND THEIR FIELDS:
  salary / seasonal-employment:
    NetAmountPerPeriod, Frequency (weekly/biweekly/bimonthly/monthly),
    StartDate, EndDate (seasonal), PayAnchor (optional, delegates exact
    period counting to the payroll calendar service), Revision

  employment-insurance:
    GrossWeekly, FederalTaxWeekly, ProvincialTaxWeekly, StartDate,
    MaxWeeks, WeeksUsedOverride, Revision

  private-pension:
    AmountPerPeriod, Frequency (monthly/quarterly/semi-annual/annual),
    StartDate, PaymentDayOfMonth (1-31, default 1)

  rental:
    AmountPerPeriod, Frequency (daily/weekend/weekly/monthly),
    SeasonStartDate, SeasonEndDate (both optional)

  dividend / self-employment / other:
    AnnualAmount

DATES:
  Date fields are "2006-01-02" strings, exactly as the profile store
  holds them. Parsing happens inside the calculators; a malformed date
  degrades that one stream to a coarser estimate instead of failing the
  whole computation pass.

SEE ALSO:
  - engine.go: Dispatch on StreamType
  - benefits.go: RRQ/OAS accrual from BenefitRates
*/
package engine

// =============================================================================
// STREAM TYPE - Tagged variant discriminator
// =============================================================================

type StreamType string

const (
	StreamSalary         StreamType = "salary"
	StreamSeasonal       StreamType = "seasonal-employment"
	StreamInsurance      StreamType = "employment-insurance"
	StreamPension        StreamType = "private-pension"
	StreamRental         StreamType = "rental"
	StreamSelfEmployment StreamType = "self-employment"
	StreamDividend       StreamType = "dividend"
	StreamOther          StreamType = "other"
)

// KnownStreamType reports whether t is one of the supported variants.
func KnownStreamType(t StreamType) bool {
	switch t {
	case StreamSalary, StreamSeasonal, StreamInsurance, StreamPension,
		StreamRental, StreamSelfEmployment, StreamDividend, StreamOther:
		return true
	}
	return false
}

// =============================================================================
// REVISION - Mid-year rate change
// =============================================================================

// Revision is a mid-year change to a stream's rate and/or frequency,
// effective from a given date. Salary, seasonal, and employment
// insurance streams honor it by splitting the accrual window at the
// effective date and summing two sub-accruals.
type Revision struct {
	EffectiveDate string    `json:"effective_date"`
	NewAmount     float64   `json:"new_amount"`
	NewFrequency  Frequency `json:"new_frequency,omitempty"`
}

// =============================================================================
// INCOME STREAM - One configured income source
// =============================================================================

type IncomeStream struct {
	ID          string     `json:"id"`
	Type        StreamType `json:"type"`
	Description string     `json:"description,omitempty"`
	Active      bool       `json:"active"`

	// Flat amounts, used by the no-schedule variants and as projection
	// overrides elsewhere.
	AnnualAmount  float64 `json:"annual_amount,omitempty"`
	MonthlyAmount float64 `json:"monthly_amount,omitempty"`
	WeeklyAmount  float64 `json:"weekly_amount,omitempty"`

	// Salary / seasonal employment
	NetAmountPerPeriod float64       `json:"net_amount_per_period,omitempty"`
	Frequency          Frequency     `json:"frequency,omitempty"`
	StartDate          string        `json:"start_date,omitempty"`
	EndDate            string        `json:"end_date,omitempty"`
	PayAnchor          *AnchorConfig `json:"pay_anchor,omitempty"`
	Revision           *Revision     `json:"revision,omitempty"`

	// Employment insurance
	GrossWeekly         float64 `json:"gross_weekly,omitempty"`
	FederalTaxWeekly    float64 `json:"federal_tax_weekly,omitempty"`
	ProvincialTaxWeekly float64 `json:"provincial_tax_weekly,omitempty"`
	MaxWeeks            int     `json:"max_weeks,omitempty"`
	WeeksUsedOverride   *int    `json:"weeks_used_override,omitempty"`

	// Private pension and rental
	AmountPerPeriod   float64 `json:"amount_per_period,omitempty"`
	PaymentDayOfMonth int     `json:"payment_day_of_month,omitempty"`

	// Rental season
	SeasonStartDate string `json:"season_start_date,omitempty"`
	SeasonEndDate   string `json:"season_end_date,omitempty"`
}

// =============================================================================
// GOVERNMENT BENEFIT RATES - External, read-only schedule
// =============================================================================

// BenefitRates is the per-person government benefit schedule snapshot.
// Rates come from an external benefit schedule, not from a stream
// record, which is why RRQ/OAS accrual is structurally separate from
// the personal income calculators.
//
// OAS publishes two semiannual rates: Periode1 covers January-June,
// Periode2 covers July-December. When the split schedule is absent the
// OAS calculator falls back to the flat OASMonthly rate.
type BenefitRates struct {
	RRQMonthly  float64 `json:"rrq_monthly,omitempty"`
	OASPeriode1 float64 `json:"oas_periode1,omitempty"`
	OASPeriode2 float64 `json:"oas_periode2,omitempty"`
	OASMonthly  float64 `json:"oas_monthly,omitempty"`
}

// HasOASSplit reports whether the semiannual OAS schedule is present.
func (r BenefitRates) HasOASSplit() bool {
	return r.OASPeriode1 > 0 || r.OASPeriode2 > 0
}
