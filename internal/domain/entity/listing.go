package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing statuses.
const (
	ListingStatusDraft    = "draft"
	ListingStatusActive   = "active"
	ListingStatusArchived = "archived"
)

// ListingCategories are the travel listing kinds the agency sells.
var ListingCategories = []string{"trek", "tour", "package", "homestay", "adventure"}

// Listing is a bookable travel package.
type Listing struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Slug          string             `json:"slug" bson:"slug"`
	Description   string             `json:"description" bson:"description"`
	Category      string             `json:"category" bson:"category"`
	Price         Price              `json:"price" bson:"price"`
	Locations     []string           `json:"locations" bson:"locations"`
	DurationDays  int                `json:"duration_days" bson:"durationDays"`
	Highlights    []string           `json:"highlights,omitempty" bson:"highlights,omitempty"`
	Images        []Image            `json:"images,omitempty" bson:"images,omitempty"`
	AvailableFrom time.Time          `json:"available_from" bson:"availableFrom"`
	AvailableTo   time.Time          `json:"available_to" bson:"availableTo"`
	Featured      bool               `json:"featured" bson:"featured"`
	Status        string             `json:"status" bson:"status"`
	Views         int                `json:"views" bson:"views"`
	Reviews       RatingSummary      `json:"reviews" bson:"reviews"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}
