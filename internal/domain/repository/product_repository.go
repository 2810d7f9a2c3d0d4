package repository

import (
	"context"

	"nevoyage/internal/domain/entity"
)

type ProductCriteria struct {
	SellerID string
	Category string
	Type     string
	Status   string
	Location string
	Search   string
	Featured *bool
	Approved *bool
	MinPrice *float64
	MaxPrice *float64
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, criteria ProductCriteria, sort string, page Page) ([]*entity.Product, int64, error)
	// Update persists the product's mutable fields. Protected fields
	// (seller, creation time, review summary) are never written here.
	Update(ctx context.Context, product *entity.Product) error
	// DeleteBySeller removes a product only when owned by the given seller;
	// zero matched rows surface as a not-found error.
	DeleteBySeller(ctx context.Context, id, sellerID string) error
	SetModeration(ctx context.Context, id string, approved bool, status string) error
	IncrementViews(ctx context.Context, id string) error
}
