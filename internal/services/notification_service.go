package services

import (
	"context"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
	"junkdealer/internal/validate"
)

type NotificationService struct {
	Notes storage.NotificationStore
}

func NewNotificationService(notes storage.NotificationStore) *NotificationService {
	return &NotificationService{Notes: notes}
}

func (s *NotificationService) List(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.Notes.ListNotifications(ctx, userID)
}

func (s *NotificationService) Unread(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.Notes.ListUnreadNotifications(ctx, userID)
}

func (s *NotificationService) Create(ctx context.Context, in domain.NewNotification) (*domain.Notification, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.Notes.CreateNotification(ctx, in)
}

func (s *NotificationService) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	return s.Notes.MarkNotificationRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (bool, error) {
	return s.Notes.MarkAllNotificationsRead(ctx, userID)
}
