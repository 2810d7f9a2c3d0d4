package listquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterEmptyCriteria(t *testing.T) {
	filter := NewBuilder().
		Eq("category", "").
		Enum("status", "", "draft", "active").
		Bool("featured", nil).
		Range("price.amount", nil, nil).
		Regex("", "name").
		Text("").
		Filter()

	assert.Equal(t, bson.M{}, filter)
}

func TestFilterSingleClause(t *testing.T) {
	filter := NewBuilder().Eq("category", "trek").Filter()
	assert.Equal(t, bson.M{"category": "trek"}, filter)
}

func TestFilterMergesDisjointClauses(t *testing.T) {
	featured := true
	filter := NewBuilder().
		Eq("category", "trek").
		Bool("featured", &featured).
		Filter()

	assert.Equal(t, bson.M{"category": "trek", "featured": true}, filter)
}

func TestEnumDropsUnknownValue(t *testing.T) {
	filter := NewBuilder().Enum("status", "bogus", "draft", "active", "archived").Filter()
	assert.Equal(t, bson.M{}, filter)

	filter = NewBuilder().Enum("status", "active", "draft", "active", "archived").Filter()
	assert.Equal(t, bson.M{"status": "active"}, filter)
}

func TestIDDropsMalformedHex(t *testing.T) {
	filter := NewBuilder().ID("sellerId", "not-a-hex-id").Filter()
	assert.Equal(t, bson.M{}, filter)

	oid := primitive.NewObjectID()
	filter = NewBuilder().ID("sellerId", oid.Hex()).Filter()
	assert.Equal(t, bson.M{"sellerId": oid}, filter)
}

func TestRangeIsInclusive(t *testing.T) {
	min, max := 100.0, 500.0
	filter := NewBuilder().Range("price.amount", &min, &max).Filter()

	assert.Equal(t, bson.M{"price.amount": bson.M{"$gte": 100.0, "$lte": 500.0}}, filter)
}

func TestRangeSingleBound(t *testing.T) {
	min := 250.0
	filter := NewBuilder().Range("price.amount", &min, nil).Filter()

	assert.Equal(t, bson.M{"price.amount": bson.M{"$gte": 250.0}}, filter)
}

func TestIntEqZeroMeansAbsent(t *testing.T) {
	assert.Equal(t, bson.M{}, NewBuilder().IntEq("rating", 0).Filter())
	assert.Equal(t, bson.M{"rating": 4}, NewBuilder().IntEq("rating", 4).Filter())
}

func TestRegexEscapesAndSpansFields(t *testing.T) {
	filter := NewBuilder().Regex("tawang (west)", "name", "bio").Filter()

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 2)

	first := or[0].(bson.M)["name"].(primitive.Regex)
	assert.Equal(t, `tawang \(west\)`, first.Pattern)
	assert.Equal(t, "i", first.Options)
}

func TestTextSetsFlag(t *testing.T) {
	b := NewBuilder().Text("living root bridges")

	assert.True(t, b.HasText())
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "living root bridges"}}, b.Filter())
}

func TestSpansContainment(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	filter := NewBuilder().Spans("startDate", "endDate", &start, &end).Filter()

	assert.Equal(t, bson.M{
		"startDate": bson.M{"$lte": start},
		"endDate":   bson.M{"$gte": end},
	}, filter)
}

func TestFilterCollidingKeysFallBackToAnd(t *testing.T) {
	filter := NewBuilder().
		Eq("status", "active").
		Enum("status", "draft", "draft", "active").
		Filter()

	and, ok := filter["$and"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, and, 2)
}
