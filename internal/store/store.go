package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrVenueNotFound signals a lookup, update or delete against a missing venue.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrArtistNotFound signals a lookup, update or delete against a missing artist.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrShowNotFound signals a delete against a missing show.
	ErrShowNotFound = errors.New("show not found")
)

// BoundaryRule decides which side of the past/upcoming split a show starting
// exactly at the evaluation instant falls on.
type BoundaryRule int

const (
	// BoundaryUpcoming treats a show at the boundary instant as upcoming:
	// past means start_time strictly before now.
	BoundaryUpcoming BoundaryRule = iota
	// BoundaryPast treats a show at the boundary instant as past:
	// upcoming means start_time strictly after now.
	BoundaryPast
)

func (r BoundaryRule) isPast(start, now time.Time) bool {
	if r == BoundaryPast {
		return !start.After(now)
	}
	return start.Before(now)
}

// Store provides directory persistence backed by Postgres.
type Store struct {
	db       *sql.DB
	boundary BoundaryRule
}

// New sets up a Store using the provided database handle. Shows starting
// exactly at the evaluation instant count as upcoming.
func New(db *sql.DB) *Store {
	return &Store{db: db, boundary: BoundaryUpcoming}
}

// NewWithBoundary sets up a Store with an explicit boundary rule.
func NewWithBoundary(db *sql.DB, rule BoundaryRule) *Store {
	return &Store{db: db, boundary: rule}
}

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}
