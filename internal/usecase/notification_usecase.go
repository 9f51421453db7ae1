package usecase

import (
	"context"
	"errors"

	"career-bridge/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Notifications struct {
	notifications notification.Repository
}

func NewNotificationUsecase(notifications notification.Repository) *Notifications {
	return &Notifications{notifications: notifications}
}

func (u *Notifications) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, int64, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, ErrInvalidInput
	}

	items, err := u.notifications.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, ErrInternal
	}

	unread, err := u.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, ErrInternal
	}

	return items, unread, nil
}

func (u *Notifications) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	err := u.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return notification.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := u.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}
