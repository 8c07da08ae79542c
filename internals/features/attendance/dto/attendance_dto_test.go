package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/model"
)

func TestBuildStatistics(t *testing.T) {
	t.Run("empty page yields zero average", func(t *testing.T) {
		stats := BuildStatistics(nil)
		assert.Equal(t, 0, stats.TotalDays)
		assert.Equal(t, 0, stats.CompletedDays)
		assert.Equal(t, 0.0, stats.AverageHours)
	})

	t.Run("mixed statuses", func(t *testing.T) {
		records := []model.AttendanceModel{
			{AttendanceStatus: model.StatusCompleted, AttendanceTotalHours: 8},
			{AttendanceStatus: model.StatusCompleted, AttendanceTotalHours: 6},
			{AttendanceStatus: model.StatusActive, AttendanceTotalHours: 0},
		}
		stats := BuildStatistics(records)
		assert.Equal(t, 3, stats.TotalDays)
		assert.Equal(t, 2, stats.CompletedDays)
		assert.InDelta(t, 14.0/3.0, stats.AverageHours, 1e-9)
	})
}
