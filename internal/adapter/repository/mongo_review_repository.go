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

// reviewSorts rank individual reviews, so rating keywords hit the raw
// rating field and "helpful" orders by the helpful counter.
var reviewSorts = listquery.Merge(map[string]listquery.SortSpec{
	"rating":      {Field: "rating", Desc: true},
	"rating-high": {Field: "rating", Desc: true},
	"rating-low":  {Field: "rating"},
	"helpful":     {Field: "helpfulness.helpful", Desc: true},
})

type mongoReviewRepository struct {
	baseRepository[entity.Review]
	products *mongo.Collection
	sellers  *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &mongoReviewRepository{
		baseRepository: baseRepository[entity.Review]{coll: db.Collection(collReviews)},
		products:       db.Collection(collProducts),
		sellers:        db.Collection(collSellers),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	now := time.Now().UTC()
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("You have already reviewed this product", err)
		}
		return apperrors.Internal("Failed to create review", err)
	}
	return nil
}

func (r *mongoReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	return r.findByID(ctx, id)
}

func (r *mongoReviewRepository) List(ctx context.Context, criteria repository.ReviewCriteria, sort string, page repository.Page) ([]*entity.Review, int64, error) {
	b := listquery.NewBuilder().
		ID("productId", criteria.ProductID).
		ID("sellerId", criteria.SellerID).
		ID("userId", criteria.UserID).
		IntEq("rating", criteria.Rating).
		Bool("isApproved", criteria.Approved).
		Bool("isHidden", criteria.Hidden)

	sortDoc, projection := listquery.Order(reviewSorts, sort, false)
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	if review.ID.IsZero() {
		return apperrors.BadRequest("Review id is required", nil)
	}

	// Product, seller, and author bindings are immutable once written.
	update := bson.M{
		"rating":         review.Rating,
		"title":          review.Title,
		"content":        review.Content,
		"helpfulness":    review.Helpfulness,
		"sellerResponse": review.SellerResponse,
		"isApproved":     review.IsApproved,
		"isHidden":       review.IsHidden,
		"updatedAt":      time.Now().UTC(),
	}
	result, err := r.coll.UpdateByID(ctx, review.ID, bson.M{"$set": update})
	if err != nil {
		return apperrors.Internal("Failed to update review", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Review", nil)
	}
	return nil
}

func (r *mongoReviewRepository) DeleteByAuthor(ctx context.Context, id, userID string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Review", nil)
	}
	uid, ok := objectID(userID)
	if !ok {
		return apperrors.NotFound("Review", nil)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "userId": uid})
	if err != nil {
		return apperrors.Internal("Failed to delete review", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Review", nil)
	}
	return nil
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Review", nil)
	}
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal("Failed to delete review", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Review", nil)
	}
	return nil
}

// RecomputeProductSummary rebuilds the product's denormalized rating
// aggregate from its approved, non-hidden reviews and writes it back in a
// single $set. Concurrent review writers race on this summary; the last
// recompute wins and the next mutation heals it.
func (r *mongoReviewRepository) RecomputeProductSummary(ctx context.Context, productID string) (*entity.RatingSummary, error) {
	pid, ok := objectID(productID)
	if !ok {
		return nil, apperrors.NotFound("Product", nil)
	}

	summary, err := aggregateRatings(ctx, r.coll, bson.M{
		"productId":  pid,
		"isApproved": true,
		"isHidden":   false,
	})
	if err != nil {
		return nil, err
	}

	if _, err := r.products.UpdateByID(ctx, pid, bson.M{"$set": bson.M{
		"reviews":   summary,
		"updatedAt": time.Now().UTC(),
	}}); err != nil {
		return nil, apperrors.Internal("Failed to store product rating summary", err)
	}
	return &summary, nil
}

func (r *mongoReviewRepository) RecomputeSellerSummary(ctx context.Context, sellerID string) (*entity.RatingSummary, error) {
	sid, ok := objectID(sellerID)
	if !ok {
		return nil, apperrors.NotFound("Seller", nil)
	}

	summary, err := aggregateRatings(ctx, r.coll, bson.M{
		"sellerId":   sid,
		"isApproved": true,
		"isHidden":   false,
	})
	if err != nil {
		return nil, err
	}

	if _, err := r.sellers.UpdateByID(ctx, sid, bson.M{"$set": bson.M{
		"ratings":   summary,
		"updatedAt": time.Now().UTC(),
	}}); err != nil {
		return nil, apperrors.Internal("Failed to store seller rating summary", err)
	}
	return &summary, nil
}
