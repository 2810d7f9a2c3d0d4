package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller statuses.
const (
	SellerStatusPending   = "pending"
	SellerStatusActive    = "active"
	SellerStatusSuspended = "suspended"
)

type SellerVerification struct {
	IsVerified bool       `json:"is_verified" bson:"isVerified"`
	Notes      string     `json:"notes,omitempty" bson:"notes,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty" bson:"verifiedAt,omitempty"`
}

// Seller is an ex-servicemen marketplace vendor account.
type Seller struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user_id" bson:"userId"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	ServiceBranch string             `json:"service_branch" bson:"serviceBranch"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	Bio           string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Verification  SellerVerification `json:"verification" bson:"verification"`
	Ratings       RatingSummary      `json:"ratings" bson:"ratings"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}

// sellerTransitions: a pending account activates or is rejected into
// suspension; active accounts can be suspended and reinstated.
var sellerTransitions = map[string][]string{
	SellerStatusPending:   {SellerStatusActive, SellerStatusSuspended},
	SellerStatusActive:    {SellerStatusSuspended},
	SellerStatusSuspended: {SellerStatusActive},
}

// CanTransitionSeller reports whether a seller account may move between statuses.
func CanTransitionSeller(from, to string) bool {
	for _, allowed := range sellerTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
