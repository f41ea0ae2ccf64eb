package services

import (
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
)

// ToastRecencyWindowMs suppresses replaying historical notifications as toasts
// when a client reconnects or cold-loads.
const ToastRecencyWindowMs = 10_000

type NotificationService struct {
	Repo   *repository.NotificationRepository
	Events EventSink
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

// Notify appends an unread notification and pushes the added event to live
// subscribers.
func (s *NotificationService) Notify(userID uint, message string, typ entity.NotificationType) error {
	n := &entity.Notification{
		UserID:    userID,
		Message:   message,
		IsRead:    false,
		Timestamp: time.Now().UnixMilli(),
		Type:      typ,
	}
	if err := s.Repo.Create(n); err != nil {
		return err
	}
	if s.Events != nil {
		s.Events.NotificationAdded(n)
	}
	return nil
}

func (s *NotificationService) ListForUser(userID uint) ([]entity.Notification, error) {
	return s.Repo.ListForUser(userID)
}

func (s *NotificationService) CountUnread(userID uint) (int64, error) {
	return s.Repo.CountUnread(userID)
}

func (s *NotificationService) MarkRead(id uint) error {
	return s.Repo.MarkRead(id)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repo.MarkAllRead(userID)
}

// ShouldToast decides whether an added notification surfaces as a transient
// toast for a given viewer: it must be recent at the moment the added event is
// observed, and either addressed to the viewer or an order/shift event seen by
// an admin. Old notifications still appear in the list, they just never toast.
func ShouldToast(n *entity.Notification, viewerID uint, viewerRole entity.Role, nowMs int64) bool {
	if nowMs-n.Timestamp >= ToastRecencyWindowMs {
		return false
	}
	if n.UserID == viewerID {
		return true
	}
	return viewerRole == entity.RoleAdmin &&
		(n.Type == entity.NotifyOrder || n.Type == entity.NotifyShift)
}
