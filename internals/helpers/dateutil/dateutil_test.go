package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	assert.NoError(t, err)

	now := time.Date(2025, 3, 14, 9, 30, 45, 0, loc)
	start, end := DayBounds(now, loc)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc), end)

	t.Run("instant before midnight stays in the same day", func(t *testing.T) {
		late := time.Date(2025, 3, 14, 23, 59, 59, 0, loc)
		s, e := DayBounds(late, loc)
		assert.Equal(t, start, s)
		assert.Equal(t, end, e)
	})

	t.Run("UTC instant buckets by the reference zone", func(t *testing.T) {
		// 18:30 UTC is already the next day in UTC+7
		utc := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
		s, _ := DayBounds(utc, loc)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc), s)
	})
}

func TestWeekSpanDays(t *testing.T) {
	loc := time.UTC
	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, 6, WeekSpanDays(mon, mon.AddDate(0, 0, 6)))
	assert.Equal(t, 5, WeekSpanDays(mon, mon.AddDate(0, 0, 5)))
	assert.Equal(t, 0, WeekSpanDays(mon, mon))
	assert.Equal(t, -1, WeekSpanDays(mon, mon.AddDate(0, 0, -1)))
}

func TestRoundHours2(t *testing.T) {
	assert.Equal(t, 8.5, RoundHours2(8*time.Hour+30*time.Minute))
	assert.Equal(t, 0.25, RoundHours2(15*time.Minute))
	assert.Equal(t, 1.67, RoundHours2(100*time.Minute))
	assert.Equal(t, 0.0, RoundHours2(0))
}
