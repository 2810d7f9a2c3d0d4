package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

type RecordNotificationInput struct {
	Type    string
	Source  string
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (uc *NotificationUseCase) RecordNotification(ctx context.Context, input RecordNotificationInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		Type:    input.Type,
		Source:  input.Source,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := recordNotification(ctx, uc.notificationRepo, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (uc *NotificationUseCase) GetNotification(ctx context.Context, id string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, errors.NotFound("Notification", nil)
	}
	return notification, nil
}

func (uc *NotificationUseCase) ListNotifications(ctx context.Context, criteria repository.NotificationCriteria, sort string, page repository.Page) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.List(ctx, criteria, sort, page)
}

// SetNotificationStatus walks the one-way new → read → archived lifecycle.
func (uc *NotificationUseCase) SetNotificationStatus(ctx context.Context, id, status string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, errors.NotFound("Notification", nil)
	}

	if !entity.CanTransitionNotification(notification.Status, status) {
		return nil, errors.BadRequest(fmt.Sprintf("Cannot move notification from %s to %s", notification.Status, status), nil)
	}

	if err := uc.notificationRepo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	notification.Status = status
	return notification, nil
}

func (uc *NotificationUseCase) MarkEmailSent(ctx context.Context, id string) error {
	return uc.notificationRepo.MarkEmailSent(ctx, id, time.Now().UTC())
}

// recordNotification fills in the bookkeeping defaults shared by every
// notification producer before persisting.
func recordNotification(ctx context.Context, repo repository.NotificationRepository, notification *entity.Notification) error {
	if notification.Type == "" {
		return errors.BadRequest("Notification type is required", nil)
	}
	notification.Reference = uuid.NewString()
	notification.Status = entity.NotificationStatusNew
	return repo.Create(ctx, notification)
}
