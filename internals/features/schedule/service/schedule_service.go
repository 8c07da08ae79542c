package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/configs"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/model"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers/dateutil"
)

var (
	ErrInvalidWeekSpan = errors.New("week start and end must be exactly 7 days apart")
	ErrInvalidDayCount = errors.New("a week must contain exactly 7 days")
	ErrEmptyDays       = errors.New("days are required")
	ErrNotFound        = errors.New("schedule not found")
)

// Store persists weekly schedules.
type Store interface {
	Create(ctx context.Context, sched *model.WeeklyScheduleModel) error
	// UpdateDays replaces the days of a schedule and returns the updated
	// row, or (nil, nil) when the id is unknown.
	UpdateDays(ctx context.Context, id uuid.UUID, days []model.DayPlan) (*model.WeeklyScheduleModel, error)
	// FindCovering returns the schedule whose week contains at
	// (inclusive both ends), or (nil, nil) when none does.
	FindCovering(ctx context.Context, at time.Time) (*model.WeeklyScheduleModel, error)
	List(ctx context.Context, limit, offset int) ([]model.WeeklyScheduleModel, int64, error)
}

// Notifier delivers a schedule-change message to many employees; only
// aggregate counts come back.
type Notifier interface {
	FanOut(ctx context.Context, userIDs []uuid.UUID, title, body string, payload notifService.Payload) notifService.FanOutResult
}

// Service owns weekly-schedule validation and the notification fan-out
// to every employee referenced by a created/updated week. Fan-out is
// fire-and-forget: the caller gets its result before delivery finishes.
type Service struct {
	Store  Store
	Notify Notifier
	Loc    *time.Location

	// runAsync dispatches the fan-out; replaced in tests to run inline.
	runAsync func(func())
}

func NewService(store Store, notify Notifier) *Service {
	return &Service{Store: store, Notify: notify}
}

func (s *Service) loc() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return configs.AppLocation
}

func (s *Service) CreateWeek(ctx context.Context, weekStart, weekEnd time.Time, days []model.DayPlan, createdBy uuid.UUID) (*model.WeeklyScheduleModel, error) {
	start := dateutil.DayStart(weekStart, s.loc())
	end := dateutil.DayStart(weekEnd, s.loc())

	if end.Before(start) || dateutil.WeekSpanDays(start, end) != 6 {
		return nil, ErrInvalidWeekSpan
	}
	if len(days) != 7 {
		return nil, ErrInvalidDayCount
	}

	sched := &model.WeeklyScheduleModel{
		ScheduleWeekStart: start,
		ScheduleWeekEnd:   end,
		ScheduleDays:      datatypes.NewJSONType(days),
		ScheduleCreatedBy: createdBy,
	}
	if err := s.Store.Create(ctx, sched); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.fanOut(days, "New work schedule",
		fmt.Sprintf("The schedule for %s - %s has been created",
			start.Format("02/01/2006"), end.Format("02/01/2006")),
		notifService.SchedulePayload{Action: "created", WeekStart: start, WeekEnd: end})

	return sched, nil
}

func (s *Service) UpdateWeek(ctx context.Context, id uuid.UUID, days []model.DayPlan) (*model.WeeklyScheduleModel, error) {
	// only presence is checked here; the 7-day invariant is enforced at
	// create time
	if len(days) == 0 {
		return nil, ErrEmptyDays
	}

	sched, err := s.Store.UpdateDays(ctx, id, days)
	if err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}
	if sched == nil {
		return nil, ErrNotFound
	}

	s.fanOut(days, "Work schedule updated",
		fmt.Sprintf("The schedule for %s - %s has been updated",
			sched.ScheduleWeekStart.Format("02/01/2006"), sched.ScheduleWeekEnd.Format("02/01/2006")),
		notifService.SchedulePayload{
			Action:    "updated",
			WeekStart: sched.ScheduleWeekStart,
			WeekEnd:   sched.ScheduleWeekEnd,
		})

	return sched, nil
}

func (s *Service) CurrentWeek(ctx context.Context, now time.Time) (*model.WeeklyScheduleModel, error) {
	// compare at day granularity so a Sunday evening still falls inside a
	// week that ends at Sunday midnight
	sched, err := s.Store.FindCovering(ctx, dateutil.DayStart(now, s.loc()))
	if err != nil {
		return nil, fmt.Errorf("find current week: %w", err)
	}
	return sched, nil // nil means "no schedule", not an error
}

// fanOut notifies every affected employee of the new days, detached
// from the request that triggered it.
func (s *Service) fanOut(days []model.DayPlan, title, body string, payload notifService.Payload) {
	if s.Notify == nil {
		return
	}
	ids := model.AffectedEmployees(days)
	if len(ids) == 0 {
		return
	}
	run := s.runAsync
	if run == nil {
		run = func(fn func()) { go fn() }
	}
	run(func() {
		res := s.Notify.FanOut(context.Background(), ids, title, body, payload)
		log.Printf("[INFO] Schedule fan-out: %d total, %d ok, %d failed",
			res.Total, res.Successful, res.Failed)
	})
}
