package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	late := time.Date(2025, time.June, 10, 23, 59, 59, 0, IST)
	start := StartOfDay(late)

	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.June, start.Month())
	assert.Equal(t, 10, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, IST, start.Location())
}

func TestStartOfDayConvertsToIST(t *testing.T) {
	// 20:00 UTC on the 10th is already the 11th in IST
	utcEvening := time.Date(2025, time.June, 10, 20, 0, 0, 0, time.UTC)
	start := StartOfDay(utcEvening)

	assert.Equal(t, 11, start.Day())
	assert.Equal(t, 0, start.Hour())
}
