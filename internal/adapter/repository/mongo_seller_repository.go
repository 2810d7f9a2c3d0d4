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

// sellerSorts: the denormalized summary lives under "ratings" here.
var sellerSorts = listquery.Merge(map[string]listquery.SortSpec{
	"rating":      {Field: "ratings.average", Desc: true},
	"rating-high": {Field: "ratings.average", Desc: true},
	"rating-low":  {Field: "ratings.average"},
})

type mongoSellerRepository struct {
	baseRepository[entity.Seller]
}

func NewMongoSellerRepository(db *mongo.Database) repository.SellerRepository {
	return &mongoSellerRepository{baseRepository[entity.Seller]{coll: db.Collection(collSellers)}}
}

func (r *mongoSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	now := time.Now().UTC()
	if seller.ID.IsZero() {
		seller.ID = primitive.NewObjectID()
	}
	seller.CreatedAt = now
	seller.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, seller); err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("A seller with this email already exists", err)
		}
		return apperrors.Internal("Failed to create seller", err)
	}
	return nil
}

func (r *mongoSellerRepository) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	return r.findByID(ctx, id)
}

func (r *mongoSellerRepository) GetByUserID(ctx context.Context, userID string) (*entity.Seller, error) {
	uid, ok := objectID(userID)
	if !ok {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"userId": uid})
}

func (r *mongoSellerRepository) List(ctx context.Context, criteria repository.SellerCriteria, sort string, page repository.Page) ([]*entity.Seller, int64, error) {
	b := listquery.NewBuilder().
		Enum("status", criteria.Status, entity.SellerStatusPending, entity.SellerStatusActive, entity.SellerStatusSuspended).
		Eq("serviceBranch", criteria.ServiceBranch).
		Bool("verification.isVerified", criteria.Verified).
		Regex(criteria.Search, "name", "bio", "location")

	sortDoc, projection := listquery.Order(sellerSorts, sort, false)
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoSellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	if seller.ID.IsZero() {
		return apperrors.BadRequest("Seller id is required", nil)
	}

	// Ratings are owned by the review recompute path; user binding and
	// creation time are immutable.
	update := bson.M{
		"name":          seller.Name,
		"email":         seller.Email,
		"phone":         seller.Phone,
		"serviceBranch": seller.ServiceBranch,
		"location":      seller.Location,
		"bio":           seller.Bio,
		"verification":  seller.Verification,
		"status":        seller.Status,
		"updatedAt":     time.Now().UTC(),
	}
	result, err := r.coll.UpdateByID(ctx, seller.ID, bson.M{"$set": update})
	if err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("A seller with this email already exists", err)
		}
		return apperrors.Internal("Failed to update seller", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Seller", nil)
	}
	return nil
}
