package engine

// =============================================================================
// FREQUENCY TABLE - Canonical periods per year
// =============================================================================

// Frequency tags how often a stream pays out. The canonical table below
// is used for projected-annual math only; to-date math counts actual
// elapsed periods instead of a canonical rate.
type Frequency string

const (
	FreqDaily      Frequency = "daily"
	FreqWeekend    Frequency = "weekend"
	FreqWeekly     Frequency = "weekly"
	FreqBiweekly   Frequency = "biweekly"
	FreqBimonthly  Frequency = "bimonthly"
	FreqMonthly    Frequency = "monthly"
	FreqQuarterly  Frequency = "quarterly"
	FreqSemiAnnual Frequency = "semi-annual"
	FreqAnnual     Frequency = "annual"
)

// PeriodsPerYear returns the canonical number of pay periods in a full
// year. Unknown frequencies return 0 so that projection math degrades
// to zero instead of guessing.
func PeriodsPerYear(f Frequency) int {
	switch f {
	case FreqDaily:
		return 365
	case FreqWeekend, FreqWeekly:
		return 52
	case FreqBiweekly:
		return 26
	case FreqBimonthly:
		return 24
	case FreqMonthly:
		return 12
	case FreqQuarterly:
		return 4
	case FreqSemiAnnual:
		return 2
	case FreqAnnual:
		return 1
	default:
		return 0
	}
}

// PeriodDays returns the nominal day length of one period for the
// day-counting frequencies. Bimonthly (twice a month) is nominally 15.
func PeriodDays(f Frequency) int {
	switch f {
	case FreqWeekly:
		return 7
	case FreqBiweekly:
		return 14
	case FreqBimonthly:
		return 15
	default:
		return 0
	}
}

// monthsPerStep returns the month stride between consecutive payments
// for the month-stepping frequencies (private pensions).
func monthsPerStep(f Frequency) int {
	switch f {
	case FreqQuarterly:
		return 3
	case FreqSemiAnnual:
		return 6
	case FreqAnnual:
		return 12
	default:
		return 1
	}
}
