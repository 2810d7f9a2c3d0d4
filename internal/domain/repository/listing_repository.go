package repository

import (
	"context"

	"nevoyage/internal/domain/entity"
)

// ListingCriteria is the supported filter set for travel listings. Absent
// (zero) fields impose no constraint; values outside the known enums are
// dropped rather than rejected.
type ListingCriteria struct {
	Category string
	Status   string
	Location string
	Search   string
	Featured *bool
	MinPrice *float64
	MaxPrice *float64
}

// ListingRepository persists travel listings. Lookup calls return (nil, nil)
// when the listing is absent; scoped mutations report NotFound instead.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Listing, error)
	List(ctx context.Context, criteria ListingCriteria, sort string, page Page) ([]*entity.Listing, int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Archive(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}
