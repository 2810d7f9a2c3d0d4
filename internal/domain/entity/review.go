package entity

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Helpfulness vote values.
const (
	VoteHelpful    = "helpful"
	VoteNotHelpful = "not_helpful"
)

var ErrInvalidVote = errors.New("invalid vote type")

type HelpfulnessVote struct {
	UserID primitive.ObjectID `json:"user_id" bson:"userId"`
	Vote   string             `json:"vote" bson:"vote"`
}

// Helpfulness tracks per-user helpful/not-helpful votes on a review.
// Invariant: each user appears at most once in Voters, and
// Helpful+NotHelpful == len(Voters).
type Helpfulness struct {
	Helpful    int               `json:"helpful" bson:"helpful"`
	NotHelpful int               `json:"not_helpful" bson:"notHelpful"`
	Voters     []HelpfulnessVote `json:"voters,omitempty" bson:"voters,omitempty"`
}

type SellerResponse struct {
	Content     string    `json:"content" bson:"content"`
	RespondedAt time.Time `json:"responded_at" bson:"respondedAt"`
}

// Review is a buyer's rating of a marketplace product. At most one review
// exists per (product, user) pair, enforced by a unique index.
type Review struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID      primitive.ObjectID `json:"product_id" bson:"productId"`
	SellerID       primitive.ObjectID `json:"seller_id" bson:"sellerId"`
	UserID         primitive.ObjectID `json:"user_id" bson:"userId"`
	Rating         int                `json:"rating" bson:"rating"`
	Title          string             `json:"title,omitempty" bson:"title,omitempty"`
	Content        string             `json:"content" bson:"content"`
	Helpfulness    Helpfulness        `json:"helpfulness" bson:"helpfulness"`
	SellerResponse *SellerResponse    `json:"seller_response,omitempty" bson:"sellerResponse,omitempty"`
	IsApproved     bool               `json:"is_approved" bson:"isApproved"`
	IsHidden       bool               `json:"is_hidden" bson:"isHidden"`
	CreatedAt      time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updatedAt"`
}

// Visible reports whether the review counts toward rating aggregates.
func (r *Review) Visible() bool {
	return r.IsApproved && !r.IsHidden
}

// ApplyVote records or switches a user's helpfulness vote. Re-casting the
// same vote is a no-op; switching moves one count between the buckets while
// the voter list length stays unchanged. Returns whether counters moved.
func (h *Helpfulness) ApplyVote(userID primitive.ObjectID, vote string) (bool, error) {
	if vote != VoteHelpful && vote != VoteNotHelpful {
		return false, ErrInvalidVote
	}

	for i, voter := range h.Voters {
		if voter.UserID != userID {
			continue
		}
		if voter.Vote == vote {
			return false, nil
		}
		h.Voters[i].Vote = vote
		if vote == VoteHelpful {
			h.Helpful++
			h.NotHelpful--
		} else {
			h.Helpful--
			h.NotHelpful++
		}
		return true, nil
	}

	h.Voters = append(h.Voters, HelpfulnessVote{UserID: userID, Vote: vote})
	if vote == VoteHelpful {
		h.Helpful++
	} else {
		h.NotHelpful++
	}
	return true, nil
}
