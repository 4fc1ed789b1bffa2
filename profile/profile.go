/*
Package profile provides JSON to engine record conversion.

PURPOSE:
  Converts the JSON profile document produced by the surrounding
  profile editor into engine.PersonInput records. The editor owns the
  document; this package only validates the shape, fills defaults, and
  hands plain records to the engine.

JSON SCHEMA:
  {
    "as_of": "2025-08-15",
    "persons": [
      {
        "id": "person-1",
        "benefits": {"rrq_monthly": 850, "oas_periode1": 600, "oas_periode2": 650},
        "streams": [
          {
            "id": "job",
            "type": "salary",
            "active": true,
            "net_amount_per_period": 1900,
            "frequency": "biweekly"
          }
        ]
      }
    ]
  }

DEFAULTS:
  - missing stream IDs are generated
  - private pensions default to payment day 1 and monthly frequency
  - an unknown stream type is a document error, not a degradation:
    a typo here would silently zero a stream the user configured

SEE ALSO:
  - engine/stream.go: The record this package produces
*/
package profile

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/horizonplan/income-engine/engine"
)

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// Document is the top-level profile JSON payload.
type Document struct {
	AsOf    string       `json:"as_of,omitempty"`
	Persons []PersonJSON `json:"persons"`
}

type PersonJSON struct {
	ID       string                `json:"id"`
	Benefits engine.BenefitRates   `json:"benefits,omitempty"`
	Streams  []engine.IncomeStream `json:"streams,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// Parse decodes a profile document and converts it into a ComputeInput.
// An empty or missing as_of leaves the reference date zero; the engine
// snapshots today in that case.
func Parse(data []byte) (engine.ComputeInput, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return engine.ComputeInput{}, fmt.Errorf("decode profile document: %w", err)
	}

	var in engine.ComputeInput
	if doc.AsOf != "" {
		asOf, err := engine.ParseDate(doc.AsOf)
		if err != nil {
			return engine.ComputeInput{}, fmt.Errorf("invalid as_of %q: %w", doc.AsOf, err)
		}
		in.AsOf = asOf
	}

	for i, p := range doc.Persons {
		if p.ID == "" {
			return engine.ComputeInput{}, fmt.Errorf("persons[%d]: missing id", i)
		}
		person := engine.PersonInput{ID: p.ID, Benefits: p.Benefits}
		for j, s := range p.Streams {
			if err := validateStream(s); err != nil {
				return engine.ComputeInput{}, fmt.Errorf("persons[%d].streams[%d]: %w", i, j, err)
			}
			applyDefaults(&s)
			person.Streams = append(person.Streams, s)
		}
		in.Persons = append(in.Persons, person)
	}
	return in, nil
}

func validateStream(s engine.IncomeStream) error {
	if s.Type == "" {
		return fmt.Errorf("missing type")
	}
	if !engine.KnownStreamType(s.Type) {
		return fmt.Errorf("unknown stream type %q", s.Type)
	}
	return nil
}

func applyDefaults(s *engine.IncomeStream) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Type == engine.StreamPension {
		if s.PaymentDayOfMonth == 0 {
			s.PaymentDayOfMonth = 1
		}
		if s.Frequency == "" {
			s.Frequency = engine.FreqMonthly
		}
	}
}

// Encode renders persons back into a profile document, the inverse of
// Parse. Used by export endpoints and round-trip tests.
func Encode(asOf engine.Date, persons []engine.PersonInput) ([]byte, error) {
	doc := Document{}
	if !asOf.IsZero() {
		doc.AsOf = asOf.String()
	}
	for _, p := range persons {
		doc.Persons = append(doc.Persons, PersonJSON{ID: p.ID, Benefits: p.Benefits, Streams: p.Streams})
	}
	return json.MarshalIndent(doc, "", "  ")
}
