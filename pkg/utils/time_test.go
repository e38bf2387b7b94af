package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	moment := time.Date(2026, 8, 23, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2026-08-23", DateString(moment))
}

func TestDatesEqual(t *testing.T) {
	morning := time.Date(2026, 8, 23, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	assert.True(t, DatesEqual(morning, evening))
	assert.False(t, DatesEqual(evening, nextDay))
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2026, 8, 23, 15, 30, 0, 0, loc)

	start := StartOfDay(moment)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, loc, start.Location())
}
