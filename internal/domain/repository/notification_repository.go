package repository

import (
	"context"
	"time"

	"nevoyage/internal/domain/entity"
)

type NotificationCriteria struct {
	Type   string
	Status string
	Search string
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	List(ctx context.Context, criteria NotificationCriteria, sort string, page Page) ([]*entity.Notification, int64, error)
	SetStatus(ctx context.Context, id, status string) error
	MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error
}
