package listquery

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// SortSpec is a concrete field/direction pair behind a public sort keyword.
type SortSpec struct {
	Field string
	Desc  bool
}

// DefaultSorts covers listing-shaped collections with a price and a
// denormalized review summary. Collections with different field names merge
// their own entries over this table via Merge.
var DefaultSorts = map[string]SortSpec{
	"newest":      {Field: "createdAt", Desc: true},
	"oldest":      {Field: "createdAt"},
	"price-asc":   {Field: "price.amount"},
	"price-desc":  {Field: "price.amount", Desc: true},
	"rating":      {Field: "reviews.average", Desc: true},
	"rating-high": {Field: "reviews.average", Desc: true},
	"rating-low":  {Field: "reviews.average"},
	"popularity":  {Field: "views", Desc: true},
}

// Merge layers overrides on top of DefaultSorts without mutating it.
func Merge(overrides map[string]SortSpec) map[string]SortSpec {
	merged := make(map[string]SortSpec, len(DefaultSorts)+len(overrides))
	for k, v := range DefaultSorts {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Order resolves a sort keyword against a table. Unknown keywords fall back
// to newest. When a text search is active and the caller did not request a
// sort, relevance ranks first; the returned projection exposes the score
// field Mongo needs for meta sorting.
func Order(table map[string]SortSpec, keyword string, textActive bool) (bson.D, bson.M) {
	keyword = strings.TrimSpace(keyword)

	if textActive && keyword == "" {
		meta := bson.M{"$meta": "textScore"}
		return bson.D{{Key: "score", Value: meta}}, bson.M{"score": meta}
	}

	spec, ok := table[keyword]
	if !ok {
		spec = table["newest"]
	}
	direction := 1
	if spec.Desc {
		direction = -1
	}
	return bson.D{{Key: spec.Field, Value: direction}}, nil
}
