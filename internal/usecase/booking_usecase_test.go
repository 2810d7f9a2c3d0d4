package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nevoyage/internal/domain/entity"
	"nevoyage/pkg/errors"
)

func activeListing(repo *fakeListingRepo, price entity.Price) *entity.Listing {
	listing := &entity.Listing{
		ID:     primitive.NewObjectID(),
		Title:  "Dzukou Valley trek",
		Slug:   "dzukou-valley-trek",
		Price:  price,
		Status: entity.ListingStatusActive,
	}
	repo.listings[listing.ID.Hex()] = listing
	return listing
}

func validBookingInput(listingID string) CreateBookingInput {
	return CreateBookingInput{
		ListingID:     listingID,
		CustomerName:  "Riya Das",
		CustomerEmail: "riya@example.com",
		StartDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Guests:        3,
	}
}

func TestCreateBookingPerPersonPricing(t *testing.T) {
	listingRepo := newFakeListingRepo()
	bookingRepo := newFakeBookingRepo()
	notificationRepo := newFakeNotificationRepo()
	uc := NewBookingUseCase(bookingRepo, listingRepo, notificationRepo)

	listing := activeListing(listingRepo, entity.Price{Amount: 4500, Currency: "INR", Unit: "per_person"})

	booking, err := uc.CreateBooking(context.Background(), validBookingInput(listing.ID.Hex()))

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, 13500.0, booking.TotalAmount)

	// A booking lands in the admin inbox.
	assert.Len(t, notificationRepo.created, 1)
	assert.Equal(t, entity.NotificationTypeBooking, notificationRepo.created[0].Type)
	assert.Equal(t, entity.NotificationStatusNew, notificationRepo.created[0].Status)
	assert.NotEmpty(t, notificationRepo.created[0].Reference)
}

func TestCreateBookingFlatPricing(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewBookingUseCase(newFakeBookingRepo(), listingRepo, newFakeNotificationRepo())

	listing := activeListing(listingRepo, entity.Price{Amount: 12000, Currency: "INR", Unit: "per_group"})

	booking, err := uc.CreateBooking(context.Background(), validBookingInput(listing.ID.Hex()))

	assert.NoError(t, err)
	assert.Equal(t, 12000.0, booking.TotalAmount)
}

func TestCreateBookingRejectsInactiveListing(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewBookingUseCase(newFakeBookingRepo(), listingRepo, newFakeNotificationRepo())

	listing := activeListing(listingRepo, entity.Price{Amount: 100})
	listing.Status = entity.ListingStatusDraft

	_, err := uc.CreateBooking(context.Background(), validBookingInput(listing.ID.Hex()))

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateBookingRejectsUnknownListing(t *testing.T) {
	uc := NewBookingUseCase(newFakeBookingRepo(), newFakeListingRepo(), newFakeNotificationRepo())

	_, err := uc.CreateBooking(context.Background(), validBookingInput(primitive.NewObjectID().Hex()))

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateBookingRejectsInvertedDates(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewBookingUseCase(newFakeBookingRepo(), listingRepo, newFakeNotificationRepo())

	listing := activeListing(listingRepo, entity.Price{Amount: 100})
	input := validBookingInput(listing.ID.Hex())
	input.StartDate, input.EndDate = input.EndDate, input.StartDate

	_, err := uc.CreateBooking(context.Background(), input)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSetBookingStatusRejectsBackwardTransition(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	uc := NewBookingUseCase(bookingRepo, newFakeListingRepo(), newFakeNotificationRepo())

	booking := &entity.Booking{ID: primitive.NewObjectID(), Status: entity.BookingStatusCancelled}
	bookingRepo.bookings[booking.ID.Hex()] = booking

	_, err := uc.SetBookingStatus(context.Background(), booking.ID.Hex(), entity.BookingStatusConfirmed)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestCancelBookingWrongEmailReadsAsNotFound(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	uc := NewBookingUseCase(bookingRepo, newFakeListingRepo(), newFakeNotificationRepo())

	booking := &entity.Booking{
		ID:            primitive.NewObjectID(),
		CustomerEmail: "riya@example.com",
		Status:        entity.BookingStatusPending,
	}
	bookingRepo.bookings[booking.ID.Hex()] = booking

	err := uc.CancelBooking(context.Background(), booking.ID.Hex(), "someone-else@example.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	assert.NoError(t, uc.CancelBooking(context.Background(), booking.ID.Hex(), "riya@example.com"))
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}
