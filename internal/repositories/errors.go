package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain errors surfaced by the record store. Handlers map these to
// actionable HTTP responses instead of generic failures.
var (
	// ErrNotFound means no record matched the given id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a uniqueness constraint was violated
	// (policy number, company name, admin email).
	ErrDuplicate = errors.New("duplicate record")
	// ErrInUse means the record is still referenced by another record
	// (deleting a company that has policies).
	ErrInUse = errors.New("record is in use")
	// ErrInvalidRef means a write pointed at a record that no longer
	// exists (creating a policy for a deleted customer).
	ErrInvalidRef = errors.New("referenced record does not exist")
)

// Postgres error codes, per the SQLSTATE standard
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError translates driver-level errors into domain errors.
// Unrecognized errors pass through untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrInUse
		}
	}
	return err
}

// mapWriteError is mapError for INSERT and UPDATE paths, where a foreign
// key violation means the referenced record is gone, not that this one is
// still in use.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrInvalidRef
	}
	return mapError(err)
}
