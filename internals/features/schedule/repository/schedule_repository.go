package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/model"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(ctx context.Context, sched *model.WeeklyScheduleModel) error {
	return r.DB.WithContext(ctx).Create(sched).Error
}

// UpdateDays replaces the day plans of an existing schedule. Returns
// (nil, nil) when the id does not exist.
func (r *Repository) UpdateDays(ctx context.Context, id uuid.UUID, days []model.DayPlan) (*model.WeeklyScheduleModel, error) {
	var sched model.WeeklyScheduleModel
	err := r.DB.WithContext(ctx).First(&sched, "schedule_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sched.ScheduleDays = datatypes.NewJSONType(days)
	if err := r.DB.WithContext(ctx).
		Model(&sched).
		Update("schedule_days", sched.ScheduleDays).Error; err != nil {
		return nil, err
	}
	return &sched, nil
}

// FindCovering returns the week whose [start, end] range contains at,
// or (nil, nil) when no schedule covers it.
func (r *Repository) FindCovering(ctx context.Context, at time.Time) (*model.WeeklyScheduleModel, error) {
	var sched model.WeeklyScheduleModel
	err := r.DB.WithContext(ctx).
		Where("schedule_week_start <= ? AND schedule_week_end >= ?", at, at).
		Order("schedule_week_start DESC").
		First(&sched).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]model.WeeklyScheduleModel, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&model.WeeklyScheduleModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.WeeklyScheduleModel
	if err := r.DB.WithContext(ctx).
		Order("schedule_week_start DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
