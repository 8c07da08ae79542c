package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/model"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) FindForDay(ctx context.Context, employeeID uuid.UUID, dayStart, dayEnd time.Time) (*model.AttendanceModel, error) {
	var rec model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Preload("TimeLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_log_check_in ASC")
		}).
		Where("attendance_employee_id = ? AND attendance_date >= ? AND attendance_date < ?",
			employeeID, dayStart, dayEnd).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) Create(ctx context.Context, rec *model.AttendanceModel) error {
	// inserts the record and its first time log in one transaction
	return r.DB.WithContext(ctx).Create(rec).Error
}

func (r *Repository) OpenShift(ctx context.Context, rec *model.AttendanceModel, lg *model.TimeLogModel) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lg.TimeLogAttendanceID = rec.AttendanceID
		if err := tx.Create(lg).Error; err != nil {
			return err
		}
		return tx.Model(&model.AttendanceModel{}).
			Where("attendance_id = ?", rec.AttendanceID).
			Update("attendance_status", model.StatusActive).Error
	})
	if err != nil {
		return err
	}
	rec.TimeLogs = append(rec.TimeLogs, *lg)
	rec.AttendanceStatus = model.StatusActive
	return nil
}

func (r *Repository) CloseShift(ctx context.Context, rec *model.AttendanceModel) error {
	last := rec.LastLog()
	if last == nil {
		return errors.New("no time log to close")
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TimeLogModel{}).
			Where("time_log_id = ?", last.TimeLogID).
			Updates(map[string]any{
				"time_log_check_out": last.TimeLogCheckOut,
				"time_log_duration":  last.TimeLogDuration,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&model.AttendanceModel{}).
			Where("attendance_id = ?", rec.AttendanceID).
			Updates(map[string]any{
				"attendance_total_hours": rec.AttendanceTotalHours,
				"attendance_status":      rec.AttendanceStatus,
			}).Error
	})
}

// HistoryFilter narrows attendance listings. EmployeeID nil means all
// employees (admin view).
type HistoryFilter struct {
	EmployeeID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Status     string
}

func (r *Repository) List(ctx context.Context, f HistoryFilter, limit, offset int) ([]model.AttendanceModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.AttendanceModel{})
	if f.EmployeeID != nil {
		q = q.Where("attendance_employee_id = ?", *f.EmployeeID)
	}
	if f.StartDate != nil {
		q = q.Where("attendance_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("attendance_date <= ?", *f.EndDate)
	}
	if f.Status != "" {
		q = q.Where("attendance_status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.AttendanceModel
	if err := q.
		Preload("TimeLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_log_check_in ASC")
		}).
		Order("attendance_date DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
