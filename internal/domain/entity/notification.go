package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types and statuses.
const (
	NotificationTypeContact    = "contact"
	NotificationTypeBooking    = "booking"
	NotificationTypeNewsletter = "newsletter"
	NotificationTypeOrder      = "order"

	NotificationStatusNew      = "new"
	NotificationStatusRead     = "read"
	NotificationStatusArchived = "archived"
)

// Notification records a user-facing interaction for the admin inbox.
type Notification struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type        string             `json:"type" bson:"type"`
	Source      string             `json:"source,omitempty" bson:"source,omitempty"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject     string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	Reference   string             `json:"reference" bson:"reference"`
	Status      string             `json:"status" bson:"status"`
	EmailSent   bool               `json:"email_sent" bson:"emailSent"`
	EmailSentAt *time.Time         `json:"email_sent_at,omitempty" bson:"emailSentAt,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updatedAt"`
}

// notificationTransitions: new → read → archived, never backwards.
var notificationTransitions = map[string][]string{
	NotificationStatusNew:  {NotificationStatusRead, NotificationStatusArchived},
	NotificationStatusRead: {NotificationStatusArchived},
}

// CanTransitionNotification reports whether a notification may move between statuses.
func CanTransitionNotification(from, to string) bool {
	for _, allowed := range notificationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
