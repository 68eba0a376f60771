package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))

	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)

	unique := &pgconn.PgError{Code: "23505", ConstraintName: "policies_policy_number_key"}
	assert.ErrorIs(t, mapError(unique), ErrDuplicate)

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "policies_insurance_company_id_fkey"}
	assert.ErrorIs(t, mapError(fk), ErrInUse)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapError(other))
}

func TestMapWriteError(t *testing.T) {
	assert.Nil(t, mapWriteError(nil))

	// On a write, a missing foreign key means the reference is bad,
	// not that the record is held by dependents.
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "policies_customer_id_fkey"}
	assert.ErrorIs(t, mapWriteError(fk), ErrInvalidRef)

	unique := &pgconn.PgError{Code: "23505", ConstraintName: "policies_policy_number_key"}
	assert.ErrorIs(t, mapWriteError(unique), ErrDuplicate)

	assert.ErrorIs(t, mapWriteError(pgx.ErrNoRows), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapWriteError(other))
}
