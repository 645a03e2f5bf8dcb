package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/store"

	_ "modernc.org/sqlite"
)

// timeFormat is how timestamps are stored. RFC3339 in UTC keeps the
// columns human-readable and comparable with plain string ordering.
const timeFormat = time.RFC3339Nano

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) VerificationSessions() store.VerificationSessions {
	return &verificationsRepo{db: s.db}
}

func (s *Store) Sessions() store.Sessions { return &sessionsRepo{db: s.db} }

func (s *Store) Submissions() store.Submissions { return &submissionsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeFormat, s)
}
