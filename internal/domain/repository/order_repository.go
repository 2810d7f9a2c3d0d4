package repository

import (
	"context"

	"nevoyage/internal/domain/entity"
)

type OrderCriteria struct {
	BuyerID  string
	SellerID string
	Status   string
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, criteria OrderCriteria, sort string, page Page) ([]*entity.Order, int64, error)
	SetStatus(ctx context.Context, id, status string) error
}
