package Controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindowStartsOnMonday(t *testing.T) {
	zone := time.FixedZone("UTC+11", 11*3600)
	day := time.Date(2026, time.March, 4, 23, 30, 0, 0, zone) // a Wednesday, late evening

	start, end := weekWindow(day)

	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, zone), start)
	assert.Equal(t, start.AddDate(0, 0, 7), end)
	assert.Equal(t, zone, start.Location())
}

func TestWeekWindowSundayBelongsToSameWeek(t *testing.T) {
	day := time.Date(2026, time.March, 8, 10, 0, 0, 0, time.Local) // a Sunday

	start, end := weekWindow(day)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local), start)
	assert.True(t, day.Before(end))
}

func TestWeekWindowMatchesLocallyParsedDay(t *testing.T) {
	parsed, err := time.ParseInLocation("2006-01-02", "2026-03-04", time.Local)
	require.NoError(t, err)

	start, _ := weekWindow(parsed)
	wantStart, _ := weekWindow(time.Date(2026, time.March, 4, 15, 0, 0, 0, time.Local))
	assert.Equal(t, wantStart, start)
}
