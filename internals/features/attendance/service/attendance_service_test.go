package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/model"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
)

// fakeStore keeps records in memory, keyed like the unique index.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]*model.AttendanceModel
	failAll bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*model.AttendanceModel{}}
}

func storeKey(employeeID uuid.UUID, day time.Time) string {
	return employeeID.String() + "|" + day.Format("2006-01-02")
}

func (s *fakeStore) FindForDay(ctx context.Context, employeeID uuid.UUID, dayStart, dayEnd time.Time) (*model.AttendanceModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("store down")
	}
	rec, ok := s.records[storeKey(employeeID, dayStart)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.TimeLogs = append([]model.TimeLogModel(nil), rec.TimeLogs...)
	return &cp, nil
}

func (s *fakeStore) Create(ctx context.Context, rec *model.AttendanceModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errors.New("store down")
	}
	rec.AttendanceID = uuid.New()
	for i := range rec.TimeLogs {
		rec.TimeLogs[i].TimeLogID = uuid.New()
		rec.TimeLogs[i].TimeLogAttendanceID = rec.AttendanceID
	}
	cp := *rec
	cp.TimeLogs = append([]model.TimeLogModel(nil), rec.TimeLogs...)
	s.records[storeKey(rec.AttendanceEmployeeID, rec.AttendanceDate)] = &cp
	return nil
}

func (s *fakeStore) OpenShift(ctx context.Context, rec *model.AttendanceModel, lg *model.TimeLogModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errors.New("store down")
	}
	lg.TimeLogID = uuid.New()
	lg.TimeLogAttendanceID = rec.AttendanceID
	rec.TimeLogs = append(rec.TimeLogs, *lg)
	rec.AttendanceStatus = model.StatusActive
	stored := s.records[storeKey(rec.AttendanceEmployeeID, rec.AttendanceDate)]
	stored.TimeLogs = append(stored.TimeLogs, *lg)
	stored.AttendanceStatus = model.StatusActive
	return nil
}

func (s *fakeStore) CloseShift(ctx context.Context, rec *model.AttendanceModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errors.New("store down")
	}
	cp := *rec
	cp.TimeLogs = append([]model.TimeLogModel(nil), rec.TimeLogs...)
	s.records[storeKey(rec.AttendanceEmployeeID, rec.AttendanceDate)] = &cp
	return nil
}

// fakeNotifier records sends; optionally fails.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifService.Payload
	err   error
}

func (n *fakeNotifier) Send(ctx context.Context, userID uuid.UUID, title, body string, payload notifService.Payload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, payload)
	return n.err
}

func newTestService(store Store, notify Notifier) *Service {
	svc := NewService(store, notify)
	svc.Loc = time.UTC
	return svc
}

func TestToggle_FullDay(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	employee := uuid.New()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// 09:00 - first toggle creates the record with one open log
	res, err := svc.Toggle(ctx, employee, day.Add(9*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, ActionCheckIn, res.Action)
	assert.Equal(t, day, res.Record.AttendanceDate)
	assert.Len(t, res.Record.TimeLogs, 1)
	assert.Nil(t, res.Record.TimeLogs[0].TimeLogCheckOut)
	assert.Equal(t, model.StatusActive, res.Record.AttendanceStatus)

	// 17:30 - second toggle closes the shift: duration 8.5
	res, err = svc.Toggle(ctx, employee, day.Add(17*time.Hour+30*time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, ActionCheckOut, res.Action)
	assert.Equal(t, 8.5, res.Duration)
	assert.Equal(t, 8.5, res.Record.AttendanceTotalHours)
	assert.Equal(t, model.StatusCompleted, res.Record.AttendanceStatus)
	assert.NotNil(t, res.Record.TimeLogs[0].TimeLogCheckOut)

	// 18:00 - third toggle appends a second open log; totals unchanged
	res, err = svc.Toggle(ctx, employee, day.Add(18*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, ActionCheckIn, res.Action)
	assert.Len(t, res.Record.TimeLogs, 2)
	assert.Nil(t, res.Record.TimeLogs[1].TimeLogCheckOut)
	assert.Equal(t, 8.5, res.Record.AttendanceTotalHours)
	assert.Equal(t, model.StatusActive, res.Record.AttendanceStatus)

	// 19:00 - close the second shift, totals accumulate
	res, err = svc.Toggle(ctx, employee, day.Add(19*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, ActionCheckOut, res.Action)
	assert.Equal(t, 1.0, res.Duration)
	assert.Equal(t, 9.5, res.Record.AttendanceTotalHours)

	// one notification attempt per transition
	assert.Len(t, notifier.calls, 4)
}

func TestToggle_AtMostOneOpenLog(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)

	employee := uuid.New()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// concurrent toggles for the same employee/day are serialized
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Toggle(ctx, employee, day.Add(time.Duration(9+i)*time.Hour))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	rec, err := store.FindForDay(ctx, employee, day, day.AddDate(0, 0, 1))
	assert.NoError(t, err)
	open := 0
	for i, lg := range rec.TimeLogs {
		if lg.TimeLogCheckOut == nil {
			open++
			assert.Equal(t, len(rec.TimeLogs)-1, i, "open log must be the last entry")
		}
	}
	assert.LessOrEqual(t, open, 1)
	// 8 toggles = 4 complete in/out cycles
	assert.Len(t, rec.TimeLogs, 4)
}

func TestToggle_SeparateDaysSeparateRecords(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)

	employee := uuid.New()
	ctx := context.Background()

	// 23:30 and 00:30 the next day land in different records
	_, err := svc.Toggle(ctx, employee, time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC))
	assert.NoError(t, err)
	_, err = svc.Toggle(ctx, employee, time.Date(2025, 3, 15, 0, 30, 0, 0, time.UTC))
	assert.NoError(t, err)

	day1, _ := store.FindForDay(ctx, employee,
		time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	day2, _ := store.FindForDay(ctx, employee,
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))

	assert.NotNil(t, day1)
	assert.NotNil(t, day2)
	assert.True(t, day1.HasOpenLog())
	assert.True(t, day2.HasOpenLog())
}

func TestToggle_NotificationFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{err: errors.New("no device token")}
	svc := newTestService(store, notifier)

	employee := uuid.New()
	res, err := svc.Toggle(context.Background(), employee, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	assert.NoError(t, err, "notification failure must not fail the toggle")
	assert.Equal(t, ActionCheckIn, res.Action)
	assert.Len(t, notifier.calls, 1)
}

func TestToggle_PersistenceFailureIsFatal(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	_, err := svc.Toggle(context.Background(), uuid.New(), time.Now())

	assert.Error(t, err)
	assert.Empty(t, notifier.calls, "no notification without a committed transition")
}
