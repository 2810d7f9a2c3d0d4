package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product statuses.
const (
	ProductStatusDraft    = "draft"
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
)

// Product kinds. A "service" carries serviceable locations instead of stock.
const (
	ProductKindGoods   = "product"
	ProductKindService = "service"
)

// Product is an ex-servicemen marketplace item or service offering.
type Product struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SellerID             primitive.ObjectID `json:"seller_id" bson:"sellerId"`
	Name                 string             `json:"name" bson:"name"`
	Description          string             `json:"description" bson:"description"`
	Category             string             `json:"category" bson:"category"`
	Type                 string             `json:"type" bson:"type"`
	Price                Price              `json:"price" bson:"price"`
	ServiceableLocations []string           `json:"serviceable_locations,omitempty" bson:"serviceableLocations,omitempty"`
	Stock                int                `json:"stock" bson:"stock"`
	Images               []Image            `json:"images,omitempty" bson:"images,omitempty"`
	IsApproved           bool               `json:"is_approved" bson:"isApproved"`
	Featured             bool               `json:"featured" bson:"featured"`
	Status               string             `json:"status" bson:"status"`
	Views                int                `json:"views" bson:"views"`
	Reviews              RatingSummary      `json:"reviews" bson:"reviews"`
	CreatedAt            time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updatedAt"`
}

// NormalizeStatus enforces the approval gate: a product cannot go active
// before an admin approved it, so "active" degrades to "draft".
func (p *Product) NormalizeStatus(requested string) string {
	if requested == ProductStatusActive && !p.IsApproved {
		return ProductStatusDraft
	}
	return requested
}
