package service

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Payload is the structured data attached to a push message. Each
// notification kind has its own closed type; transports only accept
// string values, so Data() coerces everything.
type Payload interface {
	Kind() string
	Data() map[string]string
}

// AttendancePayload accompanies check-in/check-out notifications.
type AttendancePayload struct {
	Action   string // check_in | check_out
	Time     time.Time
	Duration *float64 // hours, set on check-out only
}

func (p AttendancePayload) Kind() string { return "attendance" }

func (p AttendancePayload) Data() map[string]string {
	d := map[string]string{
		"type":      "attendance",
		"action":    p.Action,
		"time":      p.Time.Format(time.RFC3339),
		"timestamp": strconv.FormatInt(p.Time.UnixMilli(), 10),
	}
	if p.Duration != nil {
		d["duration"] = strconv.FormatFloat(*p.Duration, 'f', -1, 64)
	}
	return d
}

// SchedulePayload accompanies weekly-schedule create/update fan-outs.
type SchedulePayload struct {
	Action    string // created | updated
	WeekStart time.Time
	WeekEnd   time.Time
}

func (p SchedulePayload) Kind() string { return "schedule" }

func (p SchedulePayload) Data() map[string]string {
	return map[string]string{
		"type":      "schedule",
		"action":    p.Action,
		"weekStart": p.WeekStart.Format(time.RFC3339),
		"weekEnd":   p.WeekEnd.Format(time.RFC3339),
	}
}

// RequestStatusPayload accompanies leave-request and OT-report lifecycle
// notifications.
type RequestStatusPayload struct {
	RequestID   uuid.UUID
	RequestKind string // leave_request | ot_report
	Status      string // pending | approved | rejected
}

func (p RequestStatusPayload) Kind() string { return p.RequestKind }

func (p RequestStatusPayload) Data() map[string]string {
	return map[string]string{
		"requestId": p.RequestID.String(),
		"type":      p.RequestKind,
		"status":    p.Status,
	}
}
