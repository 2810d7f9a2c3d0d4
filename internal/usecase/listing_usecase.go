package usecase

import (
	"context"
	"time"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
	"nevoyage/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
	}
}

type ListingInput struct {
	Title         string
	Slug          string
	Description   string
	Category      string
	Price         entity.Price
	Locations     []string
	DurationDays  int
	Highlights    []string
	Images        []ImageInput
	AvailableFrom time.Time
	AvailableTo   time.Time
	Featured      bool
	Status        string
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, input ListingInput) (*entity.Listing, error) {
	if !validListingCategory(input.Category) {
		return nil, errors.BadRequest("Invalid listing category", nil)
	}
	if !input.AvailableFrom.IsZero() && !input.AvailableTo.IsZero() && !input.AvailableFrom.Before(input.AvailableTo) {
		return nil, errors.BadRequest("Availability window must start before it ends", nil)
	}

	status := input.Status
	if status == "" {
		status = entity.ListingStatusDraft
	}
	slug := input.Slug
	if slug == "" {
		slug = slugify(input.Title)
	}

	listing := &entity.Listing{
		Title:         input.Title,
		Slug:          slug,
		Description:   input.Description,
		Category:      input.Category,
		Price:         input.Price,
		Locations:     input.Locations,
		DurationDays:  input.DurationDays,
		Highlights:    input.Highlights,
		Images:        buildImages(input.Images),
		AvailableFrom: input.AvailableFrom,
		AvailableTo:   input.AvailableTo,
		Featured:      input.Featured,
		Status:        status,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.NotFound("Listing", nil)
	}

	// View tracking is best effort and never fails the read.
	if err := uc.listingRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("failed to track listing view: %v", err)
	}
	return listing, nil
}

func (uc *ListingUseCase) GetListingBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (uc *ListingUseCase) ListListings(ctx context.Context, criteria repository.ListingCriteria, sort string, page repository.Page) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.List(ctx, criteria, sort, page)
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id string, input ListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.NotFound("Listing", nil)
	}

	if !validListingCategory(input.Category) {
		return nil, errors.BadRequest("Invalid listing category", nil)
	}

	listing.Title = input.Title
	if input.Slug != "" {
		listing.Slug = input.Slug
	}
	listing.Description = input.Description
	listing.Category = input.Category
	listing.Price = input.Price
	listing.Locations = input.Locations
	listing.DurationDays = input.DurationDays
	listing.Highlights = input.Highlights
	listing.AvailableFrom = input.AvailableFrom
	listing.AvailableTo = input.AvailableTo
	listing.Featured = input.Featured
	if input.Status != "" {
		listing.Status = input.Status
	}
	if len(input.Images) > 0 {
		listing.Images = buildImages(input.Images)
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) ArchiveListing(ctx context.Context, id string) error {
	return uc.listingRepo.Archive(ctx, id)
}

func validListingCategory(category string) bool {
	for _, c := range entity.ListingCategories {
		if c == category {
			return true
		}
	}
	return false
}
