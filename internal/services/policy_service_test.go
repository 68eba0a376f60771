package services

import (
	"testing"
	"time"

	"insure-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-06-15", "policy_start_date")
	require.NoError(t, err)
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, timeutil.IST, d.Location())
}

func TestParseDateRejectsBadInput(t *testing.T) {
	_, err := parseDate("", "policy_start_date")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = parseDate("15/06/2025", "policy_start_date")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = parseDate("2025-13-40", "policy_end_date")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
