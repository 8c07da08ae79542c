package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/configs"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/model"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers/dateutil"
)

const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

// Store persists attendance records. Mutations must be atomic: a failed
// write leaves no partial time log behind.
type Store interface {
	// FindForDay returns the record whose date falls in [dayStart, dayEnd),
	// or (nil, nil) when none exists.
	FindForDay(ctx context.Context, employeeID uuid.UUID, dayStart, dayEnd time.Time) (*model.AttendanceModel, error)
	// Create inserts a new record together with its first time log.
	Create(ctx context.Context, rec *model.AttendanceModel) error
	// OpenShift appends lg to rec and marks the record active.
	OpenShift(ctx context.Context, rec *model.AttendanceModel, lg *model.TimeLogModel) error
	// CloseShift persists the closed last log plus the recomputed totals
	// already set on rec.
	CloseShift(ctx context.Context, rec *model.AttendanceModel) error
}

// Notifier is the notification gateway. Failures never roll back a
// committed attendance transition.
type Notifier interface {
	Send(ctx context.Context, userID uuid.UUID, title, body string, payload notifService.Payload) error
}

// ToggleResult reports which side of the state machine fired.
type ToggleResult struct {
	Record   *model.AttendanceModel
	Action   string  // check_in | check_out
	Duration float64 // hours of the closed shift, set on check_out
}

// Service owns the per-(employee, calendar day) check-in/check-out state
// machine. Mutations for the same key are serialized through a keyed
// mutex so concurrent toggles cannot produce two open logs.
type Service struct {
	Store  Store
	Notify Notifier
	Loc    *time.Location

	locks sync.Map // "<employee>|<day>" -> *sync.Mutex
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

func (s *Service) lockFor(key string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Toggle performs exactly one of check-in or check-out for the employee
// at the given instant:
//
//	no record for today  -> create record with an open log   (check-in)
//	last log closed/none -> append a new open log            (check-in, new shift)
//	last log open        -> close it and recompute totals    (check-out)
func (s *Service) Toggle(ctx context.Context, employeeID uuid.UUID, now time.Time) (*ToggleResult, error) {
	dayStart, dayEnd := dateutil.DayBounds(now, s.loc())

	key := employeeID.String() + "|" + dayStart.Format("2006-01-02")
	mu := s.lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	rec, err := s.Store.FindForDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	switch {
	case rec == nil:
		rec = &model.AttendanceModel{
			AttendanceEmployeeID: employeeID,
			AttendanceDate:       dayStart,
			AttendanceStatus:     model.StatusActive,
			TimeLogs: []model.TimeLogModel{
				{TimeLogCheckIn: now},
			},
		}
		if err := s.Store.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("create attendance: %w", err)
		}
		s.notifyCheckIn(ctx, employeeID, now, false)
		return &ToggleResult{Record: rec, Action: ActionCheckIn}, nil

	case !rec.HasOpenLog():
		lg := &model.TimeLogModel{
			TimeLogAttendanceID: rec.AttendanceID,
			TimeLogCheckIn:      now,
		}
		if err := s.Store.OpenShift(ctx, rec, lg); err != nil {
			return nil, fmt.Errorf("open shift: %w", err)
		}
		s.notifyCheckIn(ctx, employeeID, now, true)
		return &ToggleResult{Record: rec, Action: ActionCheckIn}, nil

	default:
		last := rec.LastLog()
		checkOut := now
		last.TimeLogCheckOut = &checkOut
		last.TimeLogDuration = dateutil.RoundHours2(checkOut.Sub(last.TimeLogCheckIn))

		var total float64
		for i := range rec.TimeLogs {
			total += rec.TimeLogs[i].TimeLogDuration
		}
		rec.AttendanceTotalHours = total
		rec.AttendanceStatus = model.StatusCompleted

		if err := s.Store.CloseShift(ctx, rec); err != nil {
			return nil, fmt.Errorf("close shift: %w", err)
		}
		s.notifyCheckOut(ctx, employeeID, now, last.TimeLogDuration)
		return &ToggleResult{Record: rec, Action: ActionCheckOut, Duration: last.TimeLogDuration}, nil
	}
}

func (s *Service) notifyCheckIn(ctx context.Context, employeeID uuid.UUID, at time.Time, newShift bool) {
	if s.Notify == nil {
		return
	}
	body := fmt.Sprintf("You checked in at %s", at.In(s.loc()).Format("15:04:05"))
	if newShift {
		body = fmt.Sprintf("You checked in for a new shift at %s", at.In(s.loc()).Format("15:04:05"))
	}
	err := s.Notify.Send(ctx, employeeID, "Attendance recorded", body, notifService.AttendancePayload{
		Action: ActionCheckIn,
		Time:   at,
	})
	if err != nil {
		log.Printf("[WARN] Check-in notification failed: %v", err)
	}
}

func (s *Service) notifyCheckOut(ctx context.Context, employeeID uuid.UUID, at time.Time, duration float64) {
	if s.Notify == nil {
		return
	}
	body := fmt.Sprintf("You checked out at %s. Shift duration: %.2f hours",
		at.In(s.loc()).Format("15:04:05"), duration)
	err := s.Notify.Send(ctx, employeeID, "Attendance recorded", body, notifService.AttendancePayload{
		Action:   ActionCheckOut,
		Time:     at,
		Duration: &duration,
	})
	if err != nil {
		log.Printf("[WARN] Check-out notification failed: %v", err)
	}
}
