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

type mongoListingRepository struct {
	baseRepository[entity.Listing]
}

func NewMongoListingRepository(db *mongo.Database) repository.ListingRepository {
	return &mongoListingRepository{baseRepository[entity.Listing]{coll: db.Collection(collListings)}}
}

func (r *mongoListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	now := time.Now().UTC()
	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("A listing with this slug already exists", err)
		}
		return apperrors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *mongoListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	return r.findByID(ctx, id)
}

func (r *mongoListingRepository) GetBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoListingRepository) List(ctx context.Context, criteria repository.ListingCriteria, sort string, page repository.Page) ([]*entity.Listing, int64, error) {
	b := listquery.NewBuilder().
		Enum("category", criteria.Category, entity.ListingCategories...).
		Enum("status", criteria.Status, entity.ListingStatusDraft, entity.ListingStatusActive, entity.ListingStatusArchived).
		Eq("locations", criteria.Location).
		Bool("featured", criteria.Featured).
		Range("price.amount", criteria.MinPrice, criteria.MaxPrice).
		Text(criteria.Search)

	sortDoc, projection := listquery.Order(listquery.DefaultSorts, sort, b.HasText())
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	if listing.ID.IsZero() {
		return apperrors.BadRequest("Listing id is required", nil)
	}

	result, err := r.coll.UpdateByID(ctx, listing.ID, bson.M{"$set": listingUpdateDocument(listing)})
	if err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("A listing with this slug already exists", err)
		}
		return apperrors.Internal("Failed to update listing", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Listing", nil)
	}
	return nil
}

func (r *mongoListingRepository) Archive(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Listing", nil)
	}
	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":    entity.ListingStatusArchived,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return apperrors.Internal("Failed to archive listing", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Listing", nil)
	}
	return nil
}

func (r *mongoListingRepository) IncrementViews(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Listing", nil)
	}
	if _, err := r.coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		return apperrors.Internal("Failed to increment listing views", err)
	}
	return nil
}

// listingUpdateDocument builds the $set payload for a listing update.
// Creation time, view counter, and the review summary are owned by other
// write paths and never client-overwritten here.
func listingUpdateDocument(l *entity.Listing) bson.M {
	return bson.M{
		"title":         l.Title,
		"slug":          l.Slug,
		"description":   l.Description,
		"category":      l.Category,
		"price":         l.Price,
		"locations":     l.Locations,
		"durationDays":  l.DurationDays,
		"highlights":    l.Highlights,
		"images":        l.Images,
		"availableFrom": l.AvailableFrom,
		"availableTo":   l.AvailableTo,
		"featured":      l.Featured,
		"status":        l.Status,
		"updatedAt":     time.Now().UTC(),
	}
}
