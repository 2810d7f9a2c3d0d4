package usecase

import (
	"context"
	"fmt"
	"time"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
	"nevoyage/pkg/logger"
)

type BookingUseCase struct {
	bookingRepo      repository.BookingRepository
	listingRepo      repository.ListingRepository
	notificationRepo repository.NotificationRepository
}

func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	listingRepo repository.ListingRepository,
	notificationRepo repository.NotificationRepository,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:      bookingRepo,
		listingRepo:      listingRepo,
		notificationRepo: notificationRepo,
	}
}

type CreateBookingInput struct {
	ListingID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	StartDate     time.Time
	EndDate       time.Time
	Guests        int
	Notes         string
}

func (uc *BookingUseCase) CreateBooking(ctx context.Context, input CreateBookingInput) (*entity.Booking, error) {
	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.BadRequest("Invalid listing", nil)
	}
	if listing.Status != entity.ListingStatusActive {
		return nil, errors.BadRequest("Listing is not open for booking", nil)
	}

	if !input.StartDate.Before(input.EndDate) {
		return nil, errors.BadRequest("Travel start must be before travel end", nil)
	}
	if input.Guests < 1 {
		return nil, errors.BadRequest("At least one guest is required", nil)
	}

	booking := &entity.Booking{
		ListingID:     listing.ID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Guests:        input.Guests,
		TotalAmount:   bookingAmount(listing.Price, input.Guests),
		Notes:         input.Notes,
		Status:        entity.BookingStatusPending,
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// The admin inbox record is best effort; the booking itself stands.
	notification := &entity.Notification{
		Type:    entity.NotificationTypeBooking,
		Source:  "booking-form",
		Name:    input.CustomerName,
		Email:   input.CustomerEmail,
		Phone:   input.CustomerPhone,
		Subject: fmt.Sprintf("New booking request for %s", listing.Title),
		Message: input.Notes,
	}
	if err := recordNotification(ctx, uc.notificationRepo, notification); err != nil {
		logger.Warn("failed to record booking notification: %v", err)
	}

	return booking, nil
}

func (uc *BookingUseCase) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.NotFound("Booking", nil)
	}
	return booking, nil
}

func (uc *BookingUseCase) ListBookings(ctx context.Context, criteria repository.BookingCriteria, sort string, page repository.Page) ([]*entity.Booking, int64, error) {
	return uc.bookingRepo.List(ctx, criteria, sort, page)
}

// SetBookingStatus is the admin transition path; the status graph is one-way.
func (uc *BookingUseCase) SetBookingStatus(ctx context.Context, id, status string) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.NotFound("Booking", nil)
	}

	if !entity.CanTransitionBooking(booking.Status, status) {
		return nil, errors.BadRequest(fmt.Sprintf("Cannot move booking from %s to %s", booking.Status, status), nil)
	}

	if err := uc.bookingRepo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

// CancelBooking is customer-scoped: a wrong email reads as not found.
func (uc *BookingUseCase) CancelBooking(ctx context.Context, id, customerEmail string) error {
	return uc.bookingRepo.CancelByCustomer(ctx, id, customerEmail)
}

func bookingAmount(price entity.Price, guests int) float64 {
	if price.Unit == "per_person" {
		return price.Amount * float64(guests)
	}
	return price.Amount
}
