package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nevoyage/internal/domain/entity"
	"nevoyage/pkg/errors"
)

func TestCreateListingDerivesSlug(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewListingUseCase(listingRepo)

	listing, err := uc.CreateListing(context.Background(), ListingInput{
		Title:       "Living Root Bridges of Meghalaya!",
		Description: "Double decker bridge trek",
		Category:    "trek",
		Locations:   []string{"Meghalaya"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "living-root-bridges-of-meghalaya", listing.Slug)
	assert.Equal(t, entity.ListingStatusDraft, listing.Status)
}

func TestCreateListingRejectsUnknownCategory(t *testing.T) {
	uc := NewListingUseCase(newFakeListingRepo())

	_, err := uc.CreateListing(context.Background(), ListingInput{
		Title:    "Something",
		Category: "cruise",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateListingRejectsInvertedAvailability(t *testing.T) {
	uc := NewListingUseCase(newFakeListingRepo())

	_, err := uc.CreateListing(context.Background(), ListingInput{
		Title:         "Hornbill festival package",
		Category:      "package",
		AvailableFrom: time.Date(2026, 12, 10, 0, 0, 0, 0, time.UTC),
		AvailableTo:   time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetListingTracksView(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewListingUseCase(listingRepo)

	created, err := uc.CreateListing(context.Background(), ListingInput{
		Title:    "Tawang monastery tour",
		Category: "tour",
	})
	assert.NoError(t, err)

	_, err = uc.GetListing(context.Background(), created.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, 1, listingRepo.views[created.ID.Hex()])
}

func TestGetListingUnknownID(t *testing.T) {
	uc := NewListingUseCase(newFakeListingRepo())

	_, err := uc.GetListing(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "dzukou-valley-trek", slugify("Dzukou Valley Trek"))
	assert.Equal(t, "tea-gardens-more", slugify("  Tea Gardens & More!  "))
	assert.Equal(t, "majuli-2026", slugify("Majuli 2026"))
}
