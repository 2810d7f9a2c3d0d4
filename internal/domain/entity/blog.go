package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is an editorial article published on the marketing site.
type BlogPost struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Excerpt     string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Content     string             `json:"content" bson:"content"`
	Author      string             `json:"author" bson:"author"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	CoverImage  string             `json:"cover_image,omitempty" bson:"coverImage,omitempty"`
	Published   bool               `json:"published" bson:"published"`
	PublishedAt *time.Time         `json:"published_at,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updatedAt"`
}
