/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the engine types
  from the external contract. Amounts are rendered as fixed two-decimal
  strings so clients never see binary floating point.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - engine/engine.go: The Summary these DTOs project
*/
package api

import (
	"github.com/horizonplan/income-engine/engine"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// StreamDTO mirrors engine.IncomeStream on the wire; the engine record
// already carries the canonical JSON tags.
type StreamDTO = engine.IncomeStream

// CreateStreamRequest is the request to create or replace a stream.
type CreateStreamRequest struct {
	Stream engine.IncomeStream `json:"stream"`
}

// BenefitRatesRequest replaces a person's benefit schedule snapshot.
type BenefitRatesRequest struct {
	Rates engine.BenefitRates `json:"rates"`
}

// AccrualDTO is one (to-date, projected) pair.
type AccrualDTO struct {
	ToDate    string `json:"to_date"`
	Projected string `json:"projected_annual"`
}

// PersonSummaryDTO is one person's bucketed totals.
type PersonSummaryDTO struct {
	PersonID   string                `json:"person_id"`
	Categories map[string]AccrualDTO `json:"categories"`
	Work       AccrualDTO            `json:"work_income"`
	Benefits   AccrualDTO            `json:"benefits"`
	Total      AccrualDTO            `json:"total"`
}

// SummaryDTO is the full computation result.
type SummaryDTO struct {
	AsOf     string             `json:"as_of"`
	Persons  []PersonSummaryDTO `json:"persons"`
	Combined AccrualDTO         `json:"combined"`
}

// ErrorDTO is the uniform error envelope.
type ErrorDTO struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toAccrualDTO(a engine.Accrual) AccrualDTO {
	return AccrualDTO{ToDate: a.ToDate.String(), Projected: a.Projected.String()}
}

func toSummaryDTO(s engine.Summary) SummaryDTO {
	out := SummaryDTO{
		AsOf:     s.AsOf.String(),
		Combined: toAccrualDTO(s.Combined),
		Persons:  make([]PersonSummaryDTO, 0, len(s.Persons)),
	}
	for _, p := range s.Persons {
		dto := PersonSummaryDTO{
			PersonID:   p.PersonID,
			Categories: make(map[string]AccrualDTO, len(p.Categories)),
			Work:       toAccrualDTO(p.Work),
			Benefits:   toAccrualDTO(p.Benefits),
			Total:      toAccrualDTO(p.Total),
		}
		for c, acc := range p.Categories {
			dto.Categories[string(c)] = toAccrualDTO(acc)
		}
		out.Persons = append(out.Persons, dto)
	}
	return out
}
