package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a customer reservation against a travel listing.
type Booking struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ListingID     primitive.ObjectID `json:"listing_id" bson:"listingId"`
	CustomerName  string             `json:"customer_name" bson:"customerName"`
	CustomerEmail string             `json:"customer_email" bson:"customerEmail"`
	CustomerPhone string             `json:"customer_phone,omitempty" bson:"customerPhone,omitempty"`
	StartDate     time.Time          `json:"start_date" bson:"startDate"`
	EndDate       time.Time          `json:"end_date" bson:"endDate"`
	Guests        int                `json:"guests" bson:"guests"`
	TotalAmount   float64            `json:"total_amount" bson:"totalAmount"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}

// bookingTransitions is the allowed one-way status graph. A cancelled or
// completed booking never moves again.
var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
}

// CanTransitionBooking reports whether a booking may move between statuses.
func CanTransitionBooking(from, to string) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
