package repository

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nevoyage/internal/domain/entity"
	apperrors "nevoyage/pkg/errors"
)

// ratingBucket is one $group row: a rating value and how often it occurs.
type ratingBucket struct {
	Rating int   `bson:"_id"`
	Count  int64 `bson:"count"`
}

// summarizeBuckets folds grouped rating counts into the denormalized
// summary shape. An empty bucket set yields a zero average and count.
func summarizeBuckets(buckets []ratingBucket) entity.RatingSummary {
	var total, weighted int
	distribution := make(map[string]int, len(buckets))
	for _, b := range buckets {
		count := int(b.Count)
		distribution[strconv.Itoa(b.Rating)] = count
		total += count
		weighted += b.Rating * count
	}

	summary := entity.RatingSummary{Count: total}
	if total > 0 {
		summary.Average = float64(weighted) / float64(total)
		summary.Distribution = distribution
	}
	return summary
}

// aggregateRatings groups the reviews matching the given predicate by rating
// value. Callers pass the approved+visible match for the owning entity.
func aggregateRatings(ctx context.Context, reviews *mongo.Collection, match bson.M) (entity.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$rating",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return entity.RatingSummary{}, apperrors.Internal("Failed to aggregate ratings", err)
	}
	defer cursor.Close(ctx)

	var buckets []ratingBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return entity.RatingSummary{}, apperrors.Internal("Failed to decode rating buckets", err)
	}
	return summarizeBuckets(buckets), nil
}
