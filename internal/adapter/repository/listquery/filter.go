// Package listquery compiles loosely-specified listing criteria into Mongo
// predicates, sort documents, and pagination windows. It is shared by every
// collection-backed repository so filter composition, pagination math, and
// sort selection exist exactly once.
package listquery

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Builder assembles a predicate from an enumerated set of typed criteria.
// Absent values add no constraint. Values outside a declared enum and
// malformed ids are dropped silently: filters are permissive, only writes
// reject bad input.
type Builder struct {
	clauses []bson.M
	text    bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Eq adds an exact-match clause. Against an array field this is membership.
func (b *Builder) Eq(field, value string) *Builder {
	if v := strings.TrimSpace(value); v != "" {
		b.clauses = append(b.clauses, bson.M{field: v})
	}
	return b
}

// Enum adds an equality clause only when value is one of allowed.
func (b *Builder) Enum(field, value string, allowed ...string) *Builder {
	v := strings.TrimSpace(value)
	if v == "" {
		return b
	}
	for _, a := range allowed {
		if a == v {
			b.clauses = append(b.clauses, bson.M{field: v})
			break
		}
	}
	return b
}

// ID adds an ObjectID equality clause. Malformed hex filters nothing.
func (b *Builder) ID(field, hex string) *Builder {
	v := strings.TrimSpace(hex)
	if v == "" {
		return b
	}
	id, err := primitive.ObjectIDFromHex(v)
	if err != nil {
		return b
	}
	b.clauses = append(b.clauses, bson.M{field: id})
	return b
}

func (b *Builder) Bool(field string, value *bool) *Builder {
	if value != nil {
		b.clauses = append(b.clauses, bson.M{field: *value})
	}
	return b
}

// IntEq adds an integer equality clause; zero means absent.
func (b *Builder) IntEq(field string, value int) *Builder {
	if value != 0 {
		b.clauses = append(b.clauses, bson.M{field: value})
	}
	return b
}

// Range adds an inclusive numeric range. Either bound may be nil.
func (b *Builder) Range(field string, min, max *float64) *Builder {
	bounds := bson.M{}
	if min != nil {
		bounds["$gte"] = *min
	}
	if max != nil {
		bounds["$lte"] = *max
	}
	if len(bounds) > 0 {
		b.clauses = append(b.clauses, bson.M{field: bounds})
	}
	return b
}

// Regex adds a case-insensitive substring match over the given fields.
func (b *Builder) Regex(term string, fields ...string) *Builder {
	t := strings.TrimSpace(term)
	if t == "" || len(fields) == 0 {
		return b
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(t), Options: "i"}
	if len(fields) == 1 {
		b.clauses = append(b.clauses, bson.M{fields[0]: pattern})
		return b
	}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	b.clauses = append(b.clauses, bson.M{"$or": or})
	return b
}

// Text adds a full-text predicate over the collection's text index. While a
// text term is active, Order ranks by relevance unless an explicit sort was
// requested.
func (b *Builder) Text(term string) *Builder {
	t := strings.TrimSpace(term)
	if t == "" {
		return b
	}
	b.clauses = append(b.clauses, bson.M{"$text": bson.M{"$search": t}})
	b.text = true
	return b
}

// Spans constrains the stored [startField, endField] interval to fully
// contain the candidate interval: stored start on or before the candidate
// start and stored end on or after the candidate end.
func (b *Builder) Spans(startField, endField string, start, end *time.Time) *Builder {
	if start != nil {
		b.clauses = append(b.clauses, bson.M{startField: bson.M{"$lte": *start}})
	}
	if end != nil {
		b.clauses = append(b.clauses, bson.M{endField: bson.M{"$gte": *end}})
	}
	return b
}

// HasText reports whether a full-text term was compiled in.
func (b *Builder) HasText() bool {
	return b.text
}

// Filter flattens the collected clauses into one predicate document. Clauses
// on disjoint keys merge flat; colliding keys fall back to $and.
func (b *Builder) Filter() bson.M {
	switch len(b.clauses) {
	case 0:
		return bson.M{}
	case 1:
		return b.clauses[0]
	}

	merged := bson.M{}
	for _, clause := range b.clauses {
		for k, v := range clause {
			if _, exists := merged[k]; exists {
				and := make(bson.A, 0, len(b.clauses))
				for _, c := range b.clauses {
					and = append(and, c)
				}
				return bson.M{"$and": and}
			}
			merged[k] = v
		}
	}
	return merged
}
