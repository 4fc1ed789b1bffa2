/*
Package sqlite provides a SQLite-backed implementation of the profile store.

PURPOSE:
  Persists the household profile (income streams per person, benefit
  rate snapshots) behind engine.ProfileStore. In production the same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  streams:       One row per income stream; the full record is stored
                 as JSON next to the queryable columns, so new stream
                 fields never need a migration.
  benefit_rates: One row per person with the RRQ/OAS schedule snapshot.

WAL MODE:
  SQLite is opened with WAL for better concurrency: multiple readers
  don't block and crash recovery improves.

USAGE:
  st, err := sqlite.New("./data/profile.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

  persons, _ := st.LoadProfile(ctx)
  summary := eng.Compute(engine.ComputeInput{AsOf: asOf, Persons: persons})

SEE ALSO:
  - engine/store.go: Interface definition
  - engine/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/horizonplan/income-engine/engine"
)

// Store implements engine.ProfileStore using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS streams (
		person_id TEXT NOT NULL,
		id TEXT NOT NULL,
		stream_type TEXT NOT NULL,
		description TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		record_json TEXT NOT NULL,
		PRIMARY KEY (person_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_streams_person
		ON streams(person_id);
	CREATE INDEX IF NOT EXISTS idx_streams_type
		ON streams(stream_type);

	CREATE TABLE IF NOT EXISTS benefit_rates (
		person_id TEXT PRIMARY KEY,
		rates_json TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// STREAMS
// =============================================================================

func (s *Store) SaveStream(ctx context.Context, personID string, stream engine.IncomeStream) error {
	payload, err := json.Marshal(stream)
	if err != nil {
		return fmt.Errorf("encode stream %s: %w", stream.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO streams (person_id, id, stream_type, description, active, record_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(person_id, id) DO UPDATE SET
			stream_type = excluded.stream_type,
			description = excluded.description,
			active = excluded.active,
			record_json = excluded.record_json`,
		personID, stream.ID, string(stream.Type), stream.Description, stream.Active, string(payload))
	if err != nil {
		return fmt.Errorf("save stream %s: %w", stream.ID, err)
	}
	return nil
}

func (s *Store) ListStreams(ctx context.Context, personID string) ([]engine.IncomeStream, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record_json FROM streams WHERE person_id = ? ORDER BY id`, personID)
	if err != nil {
		return nil, fmt.Errorf("list streams for %s: %w", personID, err)
	}
	defer rows.Close()

	var streams []engine.IncomeStream
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var stream engine.IncomeStream
		if err := json.Unmarshal([]byte(payload), &stream); err != nil {
			return nil, fmt.Errorf("decode stream for %s: %w", personID, err)
		}
		streams = append(streams, stream)
	}
	return streams, rows.Err()
}

func (s *Store) DeleteStream(ctx context.Context, personID, streamID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM streams WHERE person_id = ? AND id = ?`, personID, streamID)
	if err != nil {
		return fmt.Errorf("delete stream %s: %w", streamID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete %s/%s: %w", personID, streamID, engine.ErrStreamNotFound)
	}
	return nil
}

// =============================================================================
// BENEFIT RATES
// =============================================================================

func (s *Store) SaveBenefitRates(ctx context.Context, personID string, r engine.BenefitRates) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode benefit rates for %s: %w", personID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO benefit_rates (person_id, rates_json) VALUES (?, ?)
		ON CONFLICT(person_id) DO UPDATE SET rates_json = excluded.rates_json`,
		personID, string(payload))
	if err != nil {
		return fmt.Errorf("save benefit rates for %s: %w", personID, err)
	}
	return nil
}

func (s *Store) BenefitRates(ctx context.Context, personID string) (engine.BenefitRates, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT rates_json FROM benefit_rates WHERE person_id = ?`, personID).Scan(&payload)
	if err == sql.ErrNoRows {
		return engine.BenefitRates{}, nil
	}
	if err != nil {
		return engine.BenefitRates{}, fmt.Errorf("load benefit rates for %s: %w", personID, err)
	}
	var rates engine.BenefitRates
	if err := json.Unmarshal([]byte(payload), &rates); err != nil {
		return engine.BenefitRates{}, fmt.Errorf("decode benefit rates for %s: %w", personID, err)
	}
	return rates, nil
}

// =============================================================================
// PROFILE ASSEMBLY
// =============================================================================

func (s *Store) ListPersons(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT person_id FROM streams
		UNION
		SELECT person_id FROM benefit_rates
		ORDER BY person_id`)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) LoadProfile(ctx context.Context) ([]engine.PersonInput, error) {
	ids, err := s.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	persons := make([]engine.PersonInput, 0, len(ids))
	for _, id := range ids {
		streams, err := s.ListStreams(ctx, id)
		if err != nil {
			return nil, err
		}
		rates, err := s.BenefitRates(ctx, id)
		if err != nil {
			return nil, err
		}
		persons = append(persons, engine.PersonInput{ID: id, Streams: streams, Benefits: rates})
	}
	return persons, nil
}

var _ engine.ProfileStore = (*Store)(nil)
