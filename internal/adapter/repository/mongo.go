package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nevoyage/internal/domain/repository"
	"nevoyage/internal/adapter/repository/listquery"
	apperrors "nevoyage/pkg/errors"
)

// Collection names.
const (
	collListings      = "listings"
	collBookings      = "bookings"
	collBlogPosts     = "blogPosts"
	collSellers       = "sellers"
	collProducts      = "products"
	collReviews       = "reviews"
	collOrders        = "orders"
	collNotifications = "notifications"
	collUsers         = "users"
)

// EnsureIndexes creates the indexes the repositories rely on: unique keys
// backing the duplicate-key error translation and text indexes backing
// relevance search. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collSellers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collReviews: {
			{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "sellerId", Value: 1}}},
		},
		collListings: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}},
		},
		collProducts: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
		},
		collBlogPosts: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "content", Value: "text"}}},
		},
		collBookings: {
			{Keys: bson.D{{Key: "listingId", Value: 1}}},
		},
		collOrders: {
			{Keys: bson.D{{Key: "buyerId", Value: 1}}},
			{Keys: bson.D{{Key: "sellerId", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

// objectID parses a hex id, reporting whether it was well formed.
func objectID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	return id, err == nil
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// baseRepository bundles the find/count/decode plumbing shared by every
// collection-backed repository.
type baseRepository[T any] struct {
	coll *mongo.Collection
}

// findPage runs the windowed query plus the companion count of the same
// predicate and returns both.
func (r *baseRepository[T]) findPage(ctx context.Context, filter bson.M, sort bson.D, projection bson.M, page repository.Page, defaultLimit int) ([]*T, int64, error) {
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to count documents", err)
	}

	skip, limit, _, _ := listquery.Window(page, defaultLimit)
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to query documents", err)
	}
	defer cursor.Close(ctx)

	items := make([]*T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, apperrors.Internal("Failed to decode document", err)
		}
		items = append(items, &doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, apperrors.Internal("Failed to iterate documents", err)
	}
	return items, total, nil
}

// findOne is a lenient lookup: absence is (nil, nil), not an error.
func (r *baseRepository[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperrors.Internal("Failed to fetch document", err)
	}
	return &doc, nil
}

// findByID is findOne keyed by hex id; malformed ids read as absent.
func (r *baseRepository[T]) findByID(ctx context.Context, hex string) (*T, error) {
	id, ok := objectID(hex)
	if !ok {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": id})
}
