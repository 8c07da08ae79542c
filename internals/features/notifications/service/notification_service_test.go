package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFanOut_CountsAndIsolation(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	failFor := ids[1]

	var mu sync.Mutex
	seen := map[uuid.UUID]int{}

	res := fanOut(context.Background(), ids, 4, func(ctx context.Context, id uuid.UUID) error {
		mu.Lock()
		seen[id]++
		mu.Unlock()
		if id == failFor {
			return errors.New("registration-token-not-registered")
		}
		return nil
	})

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, 1, res.Failed)
	// exactly one attempt per recipient
	for _, id := range ids {
		assert.Equal(t, 1, seen[id])
	}
}

func TestFanOut_Empty(t *testing.T) {
	res := fanOut(context.Background(), nil, 4, func(ctx context.Context, id uuid.UUID) error {
		t.Fatal("send must not be called")
		return nil
	})
	assert.Equal(t, FanOutResult{}, res)
}

func TestFanOut_BoundedConcurrency(t *testing.T) {
	const limit = 2
	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var inFlight, peak int32
	res := fanOut(context.Background(), ids, limit, func(ctx context.Context, id uuid.UUID) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return nil
	})

	assert.Equal(t, 10, res.Successful)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(limit))
}

func TestPayloadData(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("attendance check-in", func(t *testing.T) {
		p := AttendancePayload{Action: "check_in", Time: at}
		d := p.Data()
		assert.Equal(t, "attendance", p.Kind())
		assert.Equal(t, "check_in", d["action"])
		assert.Equal(t, "2025-03-14T09:00:00Z", d["time"])
		assert.NotContains(t, d, "duration")
	})

	t.Run("attendance check-out carries duration as string", func(t *testing.T) {
		dur := 8.5
		p := AttendancePayload{Action: "check_out", Time: at, Duration: &dur}
		assert.Equal(t, "8.5", p.Data()["duration"])
	})

	t.Run("schedule", func(t *testing.T) {
		p := SchedulePayload{Action: "created", WeekStart: at, WeekEnd: at.AddDate(0, 0, 6)}
		d := p.Data()
		assert.Equal(t, "created", d["action"])
		assert.Equal(t, "2025-03-20T09:00:00Z", d["weekEnd"])
	})

	t.Run("request status", func(t *testing.T) {
		id := uuid.New()
		p := RequestStatusPayload{RequestID: id, RequestKind: "leave_request", Status: "approved"}
		assert.Equal(t, "leave_request", p.Kind())
		assert.Equal(t, id.String(), p.Data()["requestId"])
		assert.Equal(t, "approved", p.Data()["status"])
	})
}
