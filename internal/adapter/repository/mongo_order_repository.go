package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nevoyage/internal/adapter/repository/listquery"
	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	apperrors "nevoyage/pkg/errors"
)

var orderSorts = map[string]listquery.SortSpec{
	"newest":     {Field: "createdAt", Desc: true},
	"oldest":     {Field: "createdAt"},
	"total-asc":  {Field: "totals.total"},
	"total-desc": {Field: "totals.total", Desc: true},
}

type mongoOrderRepository struct {
	baseRepository[entity.Order]
}

func NewMongoOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &mongoOrderRepository{baseRepository[entity.Order]{coll: db.Collection(collOrders)}}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	now := time.Now().UTC()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return apperrors.Internal("Failed to create order", err)
	}
	return nil
}

func (r *mongoOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.findByID(ctx, id)
}

func (r *mongoOrderRepository) List(ctx context.Context, criteria repository.OrderCriteria, sort string, page repository.Page) ([]*entity.Order, int64, error) {
	b := listquery.NewBuilder().
		ID("buyerId", criteria.BuyerID).
		ID("sellerId", criteria.SellerID).
		Enum("status", criteria.Status,
			entity.OrderStatusPending, entity.OrderStatusConfirmed, entity.OrderStatusShipped,
			entity.OrderStatusDelivered, entity.OrderStatusCancelled)

	sortDoc, projection := listquery.Order(orderSorts, sort, false)
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoOrderRepository) SetStatus(ctx context.Context, id, status string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Order", nil)
	}
	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return apperrors.Internal("Failed to update order status", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Order", nil)
	}
	return nil
}
