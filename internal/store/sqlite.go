package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"fpt/internal/models"
	"fpt/internal/providers"
	"fpt/internal/structures"
)

const schema = `
CREATE TABLE IF NOT EXISTS flight_searches (
	search_id    TEXT PRIMARY KEY,
	journey_type TEXT NOT NULL,
	origin       TEXT NOT NULL,
	destination  TEXT NOT NULL,
	leave_date   TEXT NOT NULL,
	return_date  TEXT,
	flex         TEXT
);

CREATE TABLE IF NOT EXISTS journeys (
	journey_id      TEXT PRIMARY KEY,
	search_id       TEXT NOT NULL REFERENCES flight_searches(search_id),
	n_legs          INTEGER NOT NULL,
	cabin_baggage   INTEGER NOT NULL,
	checked_baggage INTEGER NOT NULL,
	cabin_class     TEXT NOT NULL,
	airline         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS legs (
	leg_id               TEXT PRIMARY KEY,
	journey_id           TEXT NOT NULL REFERENCES journeys(journey_id),
	leg_number           INTEGER NOT NULL,
	departure_time       TEXT NOT NULL,
	arrival_time         TEXT NOT NULL,
	departure_airport    TEXT NOT NULL,
	arrival_airport      TEXT NOT NULL,
	duration             INTEGER NOT NULL,
	n_stops              INTEGER NOT NULL,
	stopover_airports    TEXT,
	distance_nominal_km  INTEGER,
	distance_absolute_km INTEGER
);

CREATE TABLE IF NOT EXISTS prices (
	journey_id  TEXT NOT NULL REFERENCES journeys(journey_id),
	price       INTEGER NOT NULL,
	currency    TEXT NOT NULL,
	observed_at TEXT NOT NULL,
	UNIQUE (journey_id, price, currency, observed_at)
);
`

// StoreInterface is the persistence boundary. Inserts are idempotent: the
// content-addressed ids make re-running the same search a no-op for rows
// already present.
type StoreInterface interface {
	Insert(table string, columns []string, rows [][]any) (int64, error)
	Close() error
}

type Store struct {
	db     *sql.DB
	logger providers.Logger
}

func NewStore(conf *structures.Config, logger providers.Logger) (StoreInterface, error) {
	db, err := sql.Open("sqlite", conf.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db at %s: %w", conf.Storage.DBPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	logger.Infof(providers.TypeStore, "Store opened at %s", conf.Storage.DBPath)
	return &Store{db: db, logger: logger}, nil
}

// Insert writes rows with INSERT OR IGNORE inside one transaction and
// returns the number of rows actually inserted. Duplicate identities are the
// intended outcome of re-observation, not errors. Layout mismatches against
// InsertMap are ValidationErrors.
func (s *Store) Insert(table string, columns []string, rows [][]any) (int64, error) {
	expected, ok := InsertMap[table]
	if !ok {
		return 0, models.NewValidationError("table", "%q is not an insertable table", table)
	}
	if !equalColumns(columns, expected) {
		return 0, models.NewValidationError("columns", "columns %v do not match layout for table %q", columns, table)
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return 0, models.NewValidationError("rows", "row %d has %d values, want %d", i, len(row), len(columns))
		}
	}

	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	query := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES %s",
		table, strings.Join(columns, ", "), placeholders)

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int64
	for _, row := range rows {
		res, err := stmt.Exec(row...)
		if err != nil {
			return 0, fmt.Errorf("insert into %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Debugf(providers.TypeStore, "Inserted %d/%d rows into %s", inserted, len(rows), table)
	return inserted, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
