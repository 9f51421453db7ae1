package usecase

import (
	"context"
	"errors"
	"testing"

	"career-bridge/internal/domain/notification"

	"github.com/google/uuid"
)

func TestNotificationUsecase_ListByUser_ReturnsUnreadCount(t *testing.T) {
	repo := &mockNotificationRepo{}
	uc := NewNotificationUsecase(repo)

	userID := uuid.New()
	for i := 0; i < 3; i++ {
		_ = repo.Create(context.Background(), notification.Notification{ID: uuid.New(), UserID: userID})
	}
	_ = repo.Create(context.Background(), notification.Notification{ID: uuid.New(), UserID: uuid.New()})

	items, unread, err := uc.ListByUser(context.Background(), userID, 20, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(items))
	}
	if unread != 3 {
		t.Fatalf("expected 3 unread, got %d", unread)
	}
}

func TestNotificationUsecase_MarkRead_GuardsOwnership(t *testing.T) {
	repo := &mockNotificationRepo{}
	uc := NewNotificationUsecase(repo)

	owner := uuid.New()
	n := notification.Notification{ID: uuid.New(), UserID: owner}
	_ = repo.Create(context.Background(), n)

	err := uc.MarkRead(context.Background(), n.ID, uuid.New())
	if !errors.Is(err, notification.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign notification, got %v", err)
	}

	if err := uc.MarkRead(context.Background(), n.ID, owner); err != nil {
		t.Fatalf("owner mark read failed: %v", err)
	}

	_, unread, err := uc.ListByUser(context.Background(), owner, 20, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected 0 unread after mark, got %d", unread)
	}
}

func TestNotificationUsecase_MarkAllRead_ReportsCount(t *testing.T) {
	repo := &mockNotificationRepo{}
	uc := NewNotificationUsecase(repo)

	userID := uuid.New()
	for i := 0; i < 2; i++ {
		_ = repo.Create(context.Background(), notification.Notification{ID: uuid.New(), UserID: userID})
	}

	n, err := uc.MarkAllRead(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 marked, got %d", n)
	}

	n, err = uc.MarkAllRead(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 {
		t.Fatalf("second pass must mark nothing, got %d", n)
	}
}
