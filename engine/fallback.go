/*
fallback.go - Shared degradation policy

PURPOSE:
  Every calculator applies the same rules for bad input:
    (a) missing fields        -> treat as 0, never fail
    (b) unparseable dates     -> log, fall back to the coarser estimate
    (c) inverted ranges       -> empty window, 0 accrual, do not propagate

  No error escapes a calculator; every calculator returns an Accrual
  even on worst-case input. Fallback chains are fixed per calculator so
  results are reproducible:

    salary:   explicit range -> payroll anchor -> days-elapsed estimate
    rental:   season range   -> month heuristic -> raw annual amount
    pension:  stream start   -> year start

LOGGING:
  Degradations are logged through a package-level zerolog logger, nop
  by default so the engine stays silent in library use. Servers install
  their logger via SetLogger at startup.
*/
package engine

import (
	"github.com/rs/zerolog"
)

// =============================================================================
// FALLBACK REASONS
// =============================================================================

const (
	fallbackBadDate          = "bad_date"
	fallbackEmptyWindow      = "empty_window"
	fallbackMissingFrequency = "missing_frequency"
	fallbackMissingAnchor    = "no_payroll_calendar"
	fallbackUnknownType      = "unknown_stream_type"
)

var log = zerolog.Nop()

// SetLogger installs the logger used to report per-stream degradations.
func SetLogger(l zerolog.Logger) { log = l }

func logFallback(streamID, field, reason string) {
	log.Warn().
		Str("stream_id", streamID).
		Str("field", field).
		Str("reason", reason).
		Msg("income accrual degraded")
}

// =============================================================================
// GUARDED PARSING
// =============================================================================

// parseDateField parses a stream date string. An empty value is not an
// error, it simply reports absent. A malformed value is logged once and
// reported absent so the caller moves to its next fallback.
func parseDateField(streamID, field, value string) (Date, bool) {
	if value == "" {
		return Date{}, false
	}
	d, err := ParseDate(value)
	if err != nil {
		logFallback(streamID, field, fallbackBadDate)
		return Date{}, false
	}
	return d, true
}
