package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/model"
	userModel "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/users/model"
)

// PushSender is the narrow transport boundary. The real push backend
// (FCM or similar) lives behind it; everything in this repo only knows
// this interface.
type PushSender interface {
	Push(ctx context.Context, token, title, body string, data map[string]string) (messageID string, err error)
}

// LogSender is the default sender: it only logs. Useful for local runs
// and environments without push credentials.
type LogSender struct{}

func (LogSender) Push(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	log.Printf("[INFO] push (log only) token=%s… title=%q", shortToken(token), title)
	return "", nil
}

func shortToken(token string) string {
	if len(token) > 8 {
		return token[:8]
	}
	return token
}

const (
	defaultFanOutLimit   = 8
	defaultFanOutTimeout = 10 * time.Second
)

// Service sends a push to a user's registered device and persists a
// delivery record. Failures are reported to the caller, which always
// treats them as log-and-continue.
type Service struct {
	DB     *gorm.DB
	Sender PushSender

	FanOutLimit   int
	FanOutTimeout time.Duration
}

func NewService(db *gorm.DB, sender PushSender) *Service {
	if sender == nil {
		sender = LogSender{}
	}
	return &Service{
		DB:            db,
		Sender:        sender,
		FanOutLimit:   defaultFanOutLimit,
		FanOutTimeout: defaultFanOutTimeout,
	}
}

// Send delivers one notification and persists its record. The record is
// saved even when the push fails, with status "failed".
func (s *Service) Send(ctx context.Context, userID uuid.UUID, title, body string, payload Payload) error {
	if userID == uuid.Nil || title == "" || body == "" {
		return errors.New("userID, title and body are required")
	}

	rec := model.NotificationModel{
		NotificationUserID:   userID,
		NotificationTitle:    title,
		NotificationBody:     body,
		NotificationData:     payloadToJSONMap(payload),
		NotificationType:     payloadType(payload),
		NotificationStatus:   model.StatusSent,
		NotificationPriority: model.PriorityNormal,
	}

	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("lookup user %s: %w", userID, err)
	}

	if user.UserFCMToken == nil || *user.UserFCMToken == "" {
		rec.NotificationStatus = model.StatusFailed
		s.persist(ctx, &rec)
		return fmt.Errorf("user %s has no registered device token", userID)
	}

	msgID, err := s.Sender.Push(ctx, *user.UserFCMToken, title, body, payloadData(payload))
	if err != nil {
		rec.NotificationStatus = model.StatusFailed
		s.persist(ctx, &rec)
		return fmt.Errorf("push to user %s: %w", userID, err)
	}
	if msgID != "" {
		rec.NotificationFCMMessageID = &msgID
	}

	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("save notification record: %w", err)
	}
	return nil
}

func (s *Service) persist(ctx context.Context, rec *model.NotificationModel) {
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		log.Printf("[ERROR] Failed to save notification record: %v", err)
	}
}

// FanOutResult aggregates a multi-recipient delivery. Only counts are
// observed; individual errors never reach the triggering caller.
type FanOutResult struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// FanOut delivers the same notification to many users with bounded
// concurrency and a deadline. One recipient's failure does not affect
// the others.
func (s *Service) FanOut(ctx context.Context, userIDs []uuid.UUID, title, body string, payload Payload) FanOutResult {
	limit := s.FanOutLimit
	if limit <= 0 {
		limit = defaultFanOutLimit
	}
	timeout := s.FanOutTimeout
	if timeout <= 0 {
		timeout = defaultFanOutTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res := fanOut(ctx, userIDs, limit, func(ctx context.Context, id uuid.UUID) error {
		return s.Send(ctx, id, title, body, payload)
	})
	if res.Failed > 0 {
		log.Printf("[WARN] Notification fan-out: %d/%d failed", res.Failed, res.Total)
	}
	return res
}

// fanOut runs send once per id with at most limit in flight. Errors are
// counted, logged and swallowed.
func fanOut(ctx context.Context, ids []uuid.UUID, limit int, send func(context.Context, uuid.UUID) error) FanOutResult {
	res := FanOutResult{Total: len(ids)}
	if len(ids) == 0 {
		return res
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(limit)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			err := send(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[WARN] Notification to %s failed: %v", id, err)
				res.Failed++
			} else {
				res.Successful++
			}
			return nil
		})
	}
	_ = g.Wait()
	return res
}

func payloadType(p Payload) string {
	if p == nil {
		return model.TypeSystem
	}
	return p.Kind()
}

func payloadData(p Payload) map[string]string {
	if p == nil {
		return nil
	}
	return p.Data()
}

func payloadToJSONMap(p Payload) datatypes.JSONMap {
	m := datatypes.JSONMap{}
	for k, v := range payloadData(p) {
		m[k] = v
	}
	return m
}
