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

type mongoProductRepository struct {
	baseRepository[entity.Product]
}

func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{baseRepository[entity.Product]{coll: db.Collection(collProducts)}}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return apperrors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.findByID(ctx, id)
}

func (r *mongoProductRepository) List(ctx context.Context, criteria repository.ProductCriteria, sort string, page repository.Page) ([]*entity.Product, int64, error) {
	b := listquery.NewBuilder().
		ID("sellerId", criteria.SellerID).
		Eq("category", criteria.Category).
		Enum("type", criteria.Type, entity.ProductKindGoods, entity.ProductKindService).
		Enum("status", criteria.Status, entity.ProductStatusDraft, entity.ProductStatusActive, entity.ProductStatusArchived).
		Eq("serviceableLocations", criteria.Location).
		Bool("featured", criteria.Featured).
		Bool("isApproved", criteria.Approved).
		Range("price.amount", criteria.MinPrice, criteria.MaxPrice).
		Text(criteria.Search)

	sortDoc, projection := listquery.Order(listquery.DefaultSorts, sort, b.HasText())
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if product.ID.IsZero() {
		return apperrors.BadRequest("Product id is required", nil)
	}

	result, err := r.coll.UpdateByID(ctx, product.ID, bson.M{"$set": productUpdateDocument(product)})
	if err != nil {
		return apperrors.Internal("Failed to update product", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Product", nil)
	}
	return nil
}

func (r *mongoProductRepository) DeleteBySeller(ctx context.Context, id, sellerID string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Product", nil)
	}
	sid, ok := objectID(sellerID)
	if !ok {
		return apperrors.NotFound("Product", nil)
	}

	// Existence and ownership read the same from the outside.
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "sellerId": sid})
	if err != nil {
		return apperrors.Internal("Failed to delete product", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Product", nil)
	}
	return nil
}

func (r *mongoProductRepository) SetModeration(ctx context.Context, id string, approved bool, status string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Product", nil)
	}
	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"isApproved": approved,
		"status":     status,
		"updatedAt":  time.Now().UTC(),
	}})
	if err != nil {
		return apperrors.Internal("Failed to update product moderation", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Product", nil)
	}
	return nil
}

func (r *mongoProductRepository) IncrementViews(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Product", nil)
	}
	if _, err := r.coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		return apperrors.Internal("Failed to increment product views", err)
	}
	return nil
}

// productUpdateDocument builds the $set payload for a product update.
// Protected fields never appear here: the seller binding and creation time
// are immutable, the review summary belongs to the rating recompute path,
// and approval is only written through SetModeration.
func productUpdateDocument(p *entity.Product) bson.M {
	return bson.M{
		"name":                 p.Name,
		"description":          p.Description,
		"category":             p.Category,
		"type":                 p.Type,
		"price":                p.Price,
		"serviceableLocations": p.ServiceableLocations,
		"stock":                p.Stock,
		"images":               p.Images,
		"featured":             p.Featured,
		"status":               p.Status,
		"updatedAt":            time.Now().UTC(),
	}
}
