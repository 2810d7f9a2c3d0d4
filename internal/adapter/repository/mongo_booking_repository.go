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

// bookingSorts: bookings have no price or rating, only recency.
var bookingSorts = map[string]listquery.SortSpec{
	"newest": {Field: "createdAt", Desc: true},
	"oldest": {Field: "createdAt"},
}

type mongoBookingRepository struct {
	baseRepository[entity.Booking]
}

func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &mongoBookingRepository{baseRepository[entity.Booking]{coll: db.Collection(collBookings)}}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	now := time.Now().UTC()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return apperrors.Internal("Failed to create booking", err)
	}
	return nil
}

func (r *mongoBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	return r.findByID(ctx, id)
}

func (r *mongoBookingRepository) List(ctx context.Context, criteria repository.BookingCriteria, sort string, page repository.Page) ([]*entity.Booking, int64, error) {
	b := listquery.NewBuilder().
		ID("listingId", criteria.ListingID).
		Eq("customerEmail", criteria.CustomerEmail).
		Enum("status", criteria.Status, entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusCancelled).
		Spans("startDate", "endDate", criteria.TravelStart, criteria.TravelEnd)

	sortDoc, projection := listquery.Order(bookingSorts, sort, false)
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoBookingRepository) SetStatus(ctx context.Context, id, status string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Booking", nil)
	}
	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return apperrors.Internal("Failed to update booking status", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Booking", nil)
	}
	return nil
}

func (r *mongoBookingRepository) CancelByCustomer(ctx context.Context, id, customerEmail string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Booking", nil)
	}

	// Ownership and existence are deliberately conflated: a wrong email and
	// a missing booking both read as not found.
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "customerEmail": customerEmail, "status": bson.M{"$ne": entity.BookingStatusCancelled}},
		bson.M{"$set": bson.M{"status": entity.BookingStatusCancelled, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return apperrors.Internal("Failed to cancel booking", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Booking", nil)
	}
	return nil
}
