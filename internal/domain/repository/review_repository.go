package repository

import (
	"context"

	"nevoyage/internal/domain/entity"
)

type ReviewCriteria struct {
	ProductID string
	SellerID  string
	UserID    string
	Rating    int
	Approved  *bool
	Hidden    *bool
}

// ReviewRepository persists product reviews and keeps the denormalized
// rating summaries on the owning product and seller in sync.
type ReviewRepository interface {
	// Create inserts a review; a second review for the same (product, user)
	// pair fails the unique index and surfaces as an already-reviewed error.
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	List(ctx context.Context, criteria ReviewCriteria, sort string, page Page) ([]*entity.Review, int64, error)
	Update(ctx context.Context, review *entity.Review) error
	// DeleteByAuthor removes a review only when written by the given user.
	DeleteByAuthor(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id string) error
	// RecomputeProductSummary rebuilds the product's denormalized rating
	// aggregate from its approved, non-hidden reviews.
	RecomputeProductSummary(ctx context.Context, productID string) (*entity.RatingSummary, error)
	// RecomputeSellerSummary does the same for a seller across its products.
	RecomputeSellerSummary(ctx context.Context, sellerID string) (*entity.RatingSummary, error)
}
