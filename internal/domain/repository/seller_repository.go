package repository

import (
	"context"

	"nevoyage/internal/domain/entity"
)

type SellerCriteria struct {
	Status        string
	ServiceBranch string
	Search        string
	Verified      *bool
}

type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	GetByID(ctx context.Context, id string) (*entity.Seller, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Seller, error)
	List(ctx context.Context, criteria SellerCriteria, sort string, page Page) ([]*entity.Seller, int64, error)
	Update(ctx context.Context, seller *entity.Seller) error
}
