package eventlog

import (
	"context"
	"database/sql"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000

	errGameIDEmpty = "game ID cannot be empty"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_events (
	game_id     TEXT    NOT NULL,
	seq         INTEGER NOT NULL,
	event_type  TEXT    NOT NULL,
	payload     BLOB    NOT NULL,
	recorded_at INTEGER NOT NULL,
	PRIMARY KEY (game_id, seq)
)`

// Config holds the configuration for the SQLite repository
type Config struct {
	// Path is the database file, or ":memory:"
	Path  string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLiteRepository opens the database and applies the schema
func NewSQLiteRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn(cfg.Path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	// one connection keeps ":memory:" a single database and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}

	return &sqliteRepository{db: db, clock: cfg.Clock}, nil
}

func dsn(path string) string {
	path = strings.TrimSpace(path)
	if path == ":memory:" {
		return path
	}
	return path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// Ensure sqliteRepository implements Repository
var _ Repository = (*sqliteRepository)(nil)

// Append stores a batch atomically after the game's last event
func (r *sqliteRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var last int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM game_events WHERE game_id = ?`, input.GameID).Scan(&last)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read last sequence")
	}

	out := &AppendOutput{FirstSequence: last + 1, LastSequence: last}
	if len(input.Events) == 0 {
		return out, nil
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO game_events (game_id, seq, event_type, payload, recorded_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	recordedAt := r.clock.Now().UTC().UnixMilli()
	for _, e := range input.Events {
		env, err := events.Encode(e)
		if err != nil {
			return nil, err
		}
		out.LastSequence++
		if _, err := stmt.ExecContext(ctx, input.GameID, out.LastSequence, string(env.Type), []byte(env.Payload), recordedAt); err != nil {
			return nil, errors.Wrapf(err, "failed to insert event %d", out.LastSequence)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit events")
	}
	return out, nil
}

// List returns events in sequence order
func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, event_type, payload, recorded_at FROM game_events
		 WHERE game_id = ? AND seq > ? ORDER BY seq LIMIT ?`,
		input.GameID, input.AfterSequence, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query events")
	}
	defer func() { _ = rows.Close() }()

	out := &ListOutput{}
	for rows.Next() {
		var (
			seq        int64
			eventType  string
			payload    []byte
			recordedAt int64
		)
		if err := rows.Scan(&seq, &eventType, &payload, &recordedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan event")
		}
		evt, err := events.Decode(events.Envelope{Type: events.Type(eventType), Payload: payload})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode event %d", seq)
		}
		out.Records = append(out.Records, Record{
			GameID:     input.GameID,
			Sequence:   seq,
			Event:      evt,
			RecordedAt: time.UnixMilli(recordedAt).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read events")
	}
	return out, nil
}

// Close releases the underlying database
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
