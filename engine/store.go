/*
store.go - Profile persistence interface

PURPOSE:
  The engine itself never persists anything: it reads stream records and
  produces derived totals per call. ProfileStore is the boundary to
  whatever holds the household profile. Implementations:

    - engine/store: in-memory, for tests and dev servers
    - store/sqlite: SQLite-backed, for deployed instances

ERRORS:
  Store methods return wrapped errors matchable with errors.Is against
  the sentinels below. Calculators never see store errors; the caller
  loads the profile first and hands plain records to Compute.
*/
package engine

import (
	"context"
	"errors"
)

var (
	// ErrPersonNotFound is returned when a referenced person doesn't exist.
	ErrPersonNotFound = errors.New("person not found")

	// ErrStreamNotFound is returned when a referenced stream doesn't exist.
	ErrStreamNotFound = errors.New("stream not found")
)

// ProfileStore holds the household profile: each person's income
// streams and government benefit rate snapshot.
type ProfileStore interface {
	// SaveStream inserts or replaces a stream for a person, creating
	// the person on first write.
	SaveStream(ctx context.Context, personID string, s IncomeStream) error

	// ListStreams returns a person's streams ordered by ID.
	ListStreams(ctx context.Context, personID string) ([]IncomeStream, error)

	// DeleteStream removes one stream. Returns ErrStreamNotFound if absent.
	DeleteStream(ctx context.Context, personID, streamID string) error

	// SaveBenefitRates replaces a person's benefit schedule snapshot.
	SaveBenefitRates(ctx context.Context, personID string, r BenefitRates) error

	// BenefitRates returns a person's benefit schedule; a zero value if
	// none was recorded.
	BenefitRates(ctx context.Context, personID string) (BenefitRates, error)

	// ListPersons returns every known person ID, sorted.
	ListPersons(ctx context.Context) ([]string, error)

	// LoadProfile assembles the full ComputeInput person list.
	LoadProfile(ctx context.Context) ([]PersonInput, error)
}
