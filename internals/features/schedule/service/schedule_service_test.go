package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/model"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
)

type fakeStore struct {
	mu        sync.Mutex
	schedules map[uuid.UUID]*model.WeeklyScheduleModel
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{schedules: map[uuid.UUID]*model.WeeklyScheduleModel{}}
}

func (s *fakeStore) Create(ctx context.Context, sched *model.WeeklyScheduleModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	sched.ScheduleID = uuid.New()
	cp := *sched
	s.schedules[sched.ScheduleID] = &cp
	return nil
}

func (s *fakeStore) UpdateDays(ctx context.Context, id uuid.UUID, days []model.DayPlan) (*model.WeeklyScheduleModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sched, ok := s.schedules[id]
	if !ok {
		return nil, nil
	}
	sched.ScheduleDays = datatypes.NewJSONType(days)
	cp := *sched
	return &cp, nil
}

func (s *fakeStore) FindCovering(ctx context.Context, at time.Time) (*model.WeeklyScheduleModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sched := range s.schedules {
		if !at.Before(sched.ScheduleWeekStart) && !at.After(sched.ScheduleWeekEnd) {
			cp := *sched
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) List(ctx context.Context, limit, offset int) ([]model.WeeklyScheduleModel, int64, error) {
	return nil, 0, nil
}

// fakeFanOut records recipients; ids in failFor are counted as failed.
type fakeFanOut struct {
	mu      sync.Mutex
	calls   []uuid.UUID
	failFor map[uuid.UUID]bool
}

func (f *fakeFanOut) FanOut(ctx context.Context, userIDs []uuid.UUID, title, body string, payload notifService.Payload) notifService.FanOutResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := notifService.FanOutResult{Total: len(userIDs)}
	for _, id := range userIDs {
		f.calls = append(f.calls, id)
		if f.failFor[id] {
			res.Failed++
		} else {
			res.Successful++
		}
	}
	return res
}

func newTestService(store Store, notify Notifier) *Service {
	svc := NewService(store, notify)
	svc.Loc = time.UTC
	svc.runAsync = func(fn func()) { fn() }
	return svc
}

func weekDays(start time.Time, count int, employees ...uuid.UUID) []model.DayPlan {
	days := make([]model.DayPlan, 0, count)
	for i := 0; i < count; i++ {
		var morning []model.ShiftAssignment
		for _, id := range employees {
			morning = append(morning, model.ShiftAssignment{EmployeeID: id})
		}
		days = append(days, model.DayPlan{
			Date:   start.AddDate(0, 0, i),
			Shifts: model.DayShifts{Morning: morning},
		})
	}
	return days
}

func TestCreateWeek_RejectsShortSpan(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)

	// Monday through Saturday is only a 5-day span
	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateWeek(context.Background(), mon, mon.AddDate(0, 0, 5),
		weekDays(mon, 7), uuid.New())

	assert.ErrorIs(t, err, ErrInvalidWeekSpan)
	assert.Empty(t, store.schedules)
}

func TestCreateWeek_RejectsWrongDayCount(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)

	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateWeek(context.Background(), mon, mon.AddDate(0, 0, 6),
		weekDays(mon, 6), uuid.New())

	assert.ErrorIs(t, err, ErrInvalidDayCount)
}

func TestCreateWeek_TruncatesBoundsAndStores(t *testing.T) {
	store := newFakeStore()
	notify := &fakeFanOut{}
	svc := newTestService(store, notify)

	// times of day on the bounds must not affect the span check
	mon := time.Date(2025, 3, 10, 14, 45, 0, 0, time.UTC)
	sun := time.Date(2025, 3, 16, 8, 5, 0, 0, time.UTC)
	sched, err := svc.CreateWeek(context.Background(), mon, sun,
		weekDays(mon.Truncate(24*time.Hour), 7), uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), sched.ScheduleWeekStart)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), sched.ScheduleWeekEnd)
	assert.Len(t, store.schedules, 1)
}

func TestCreateWeek_NotifiesEachEmployeeOnce(t *testing.T) {
	store := newFakeStore()
	notify := &fakeFanOut{}
	svc := newTestService(store, notify)

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// a and b appear on every day; c only on the last one
	days := weekDays(mon, 7, a, b)
	days[6].Shifts.Afternoon = []model.ShiftAssignment{{EmployeeID: c}}

	_, err := svc.CreateWeek(context.Background(), mon, mon.AddDate(0, 0, 6), days, uuid.New())

	assert.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a, b, c}, notify.calls,
		"each distinct employee gets exactly one attempt")
}

func TestCreateWeek_PartialFanOutFailureDoesNotFailCreate(t *testing.T) {
	store := newFakeStore()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	notify := &fakeFanOut{failFor: map[uuid.UUID]bool{b: true}}
	svc := newTestService(store, notify)

	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sched, err := svc.CreateWeek(context.Background(), mon, mon.AddDate(0, 0, 6),
		weekDays(mon, 7, a, b, c), uuid.New())

	assert.NoError(t, err)
	assert.NotNil(t, sched)
	assert.Len(t, store.schedules, 1)
}

func TestCreateWeek_StoreFailureSkipsFanOut(t *testing.T) {
	store := newFakeStore()
	store.createErr = errors.New("db down")
	notify := &fakeFanOut{}
	svc := newTestService(store, notify)

	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateWeek(context.Background(), mon, mon.AddDate(0, 0, 6),
		weekDays(mon, 7, uuid.New()), uuid.New())

	assert.Error(t, err)
	assert.Empty(t, notify.calls)
}

func TestUpdateWeek_UnknownIDIsNotFound(t *testing.T) {
	svc := newTestService(newFakeStore(), nil)

	_, err := svc.UpdateWeek(context.Background(), uuid.New(),
		weekDays(time.Now(), 7, uuid.New()))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateWeek_EmptyDaysRejected(t *testing.T) {
	svc := newTestService(newFakeStore(), nil)

	_, err := svc.UpdateWeek(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, ErrEmptyDays)
}

func TestUpdateWeek_FanOutUsesNewDays(t *testing.T) {
	store := newFakeStore()
	notify := &fakeFanOut{}
	svc := newTestService(store, notify)

	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	old := uuid.New()
	sched, err := svc.CreateWeek(context.Background(), mon, mon.AddDate(0, 0, 6),
		weekDays(mon, 7, old), uuid.New())
	assert.NoError(t, err)
	notify.calls = nil

	// the replacement days reference a different employee
	replacement := uuid.New()
	_, err = svc.UpdateWeek(context.Background(), sched.ScheduleID,
		weekDays(mon, 7, replacement))

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{replacement}, notify.calls)
}

func TestCurrentWeek_NoneIsNilNotError(t *testing.T) {
	svc := newTestService(newFakeStore(), nil)

	sched, err := svc.CurrentWeek(context.Background(), time.Now())

	assert.NoError(t, err)
	assert.Nil(t, sched)
}
