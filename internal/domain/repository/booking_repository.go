package repository

import (
	"context"
	"time"

	"nevoyage/internal/domain/entity"
)

// BookingCriteria filters bookings. TravelStart/TravelEnd select bookings
// whose stored interval fully contains the candidate interval.
type BookingCriteria struct {
	ListingID     string
	CustomerEmail string
	Status        string
	TravelStart   *time.Time
	TravelEnd     *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	List(ctx context.Context, criteria BookingCriteria, sort string, page Page) ([]*entity.Booking, int64, error)
	SetStatus(ctx context.Context, id, status string) error
	// CancelByCustomer cancels a booking only when the id and customer email
	// both match; zero matched rows surface as a not-found error.
	CancelByCustomer(ctx context.Context, id, customerEmail string) error
}
