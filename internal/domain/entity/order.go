package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	ProductID primitive.ObjectID `json:"product_id" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Kind      string             `json:"kind" bson:"kind"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	UnitPrice float64            `json:"unit_price" bson:"unitPrice"`
}

type OrderTotals struct {
	Subtotal float64 `json:"subtotal" bson:"subtotal"`
	Shipping float64 `json:"shipping" bson:"shipping"`
	Total    float64 `json:"total" bson:"total"`
}

// Order is a buyer's purchase from a single seller.
type Order struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BuyerID   primitive.ObjectID `json:"buyer_id" bson:"buyerId"`
	SellerID  primitive.ObjectID `json:"seller_id" bson:"sellerId"`
	Items     []OrderItem        `json:"items" bson:"items"`
	Totals    OrderTotals        `json:"totals" bson:"totals"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

// orderTransitions is the one-way fulfilment graph. Cancellation is only
// possible before shipment; delivered and cancelled are terminal.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransitionOrder reports whether an order may move between statuses.
func CanTransitionOrder(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
