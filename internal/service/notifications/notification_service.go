package notifications

import (
	"context"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/repository"
)

type NotificationUseCase interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
}

// NotificationService is the read side of the notification store: the feed a
// user sees and its read/unread bookkeeping. Content creation lives with the
// booking lifecycle.
type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListUnreadByUser(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.CountUnreadByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllReadByUser(ctx, userID)
}

var _ NotificationUseCase = (*NotificationService)(nil)
