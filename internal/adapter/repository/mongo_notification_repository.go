package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nevoyage/internal/adapter/repository/listquery"
	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	apperrors "nevoyage/pkg/errors"
)

var notificationSorts = map[string]listquery.SortSpec{
	"newest": {Field: "createdAt", Desc: true},
	"oldest": {Field: "createdAt"},
}

type mongoNotificationRepository struct {
	baseRepository[entity.Notification]
}

func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &mongoNotificationRepository{baseRepository[entity.Notification]{coll: db.Collection(collNotifications)}}
}

func (r *mongoNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	now := time.Now().UTC()
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	notification.CreatedAt = now
	notification.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return apperrors.Internal("Failed to create notification", err)
	}
	return nil
}

func (r *mongoNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	return r.findByID(ctx, id)
}

func (r *mongoNotificationRepository) List(ctx context.Context, criteria repository.NotificationCriteria, sort string, page repository.Page) ([]*entity.Notification, int64, error) {
	b := listquery.NewBuilder().
		Enum("type", criteria.Type,
			entity.NotificationTypeContact, entity.NotificationTypeBooking,
			entity.NotificationTypeNewsletter, entity.NotificationTypeOrder).
		Enum("status", criteria.Status,
			entity.NotificationStatusNew, entity.NotificationStatusRead, entity.NotificationStatusArchived).
		Regex(criteria.Search, "name", "email", "subject", "message")

	sortDoc, projection := listquery.Order(notificationSorts, sort, false)
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoNotificationRepository) SetStatus(ctx context.Context, id, status string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Notification", nil)
	}
	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return apperrors.Internal("Failed to update notification status", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Notification", nil)
	}
	return nil
}

func (r *mongoNotificationRepository) MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Notification", nil)
	}
	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"emailSent":   true,
		"emailSentAt": sentAt,
		"updatedAt":   time.Now().UTC(),
	}})
	if err != nil {
		return apperrors.Internal("Failed to record email dispatch", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Notification", nil)
	}
	return nil
}
