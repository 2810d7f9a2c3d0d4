package usecase

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nevoyage/internal/domain/entity"
	"nevoyage/pkg/errors"
)

func parseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errors.BadRequest("Invalid ID format", err)
	}
	return id, nil
}

type ImageInput struct {
	URL          string `json:"url"`
	Alt          string `json:"alt"`
	DisplayOrder int    `json:"display_order"`
}

func buildImages(inputs []ImageInput) []entity.Image {
	if len(inputs) == 0 {
		return nil
	}
	images := make([]entity.Image, len(inputs))
	for i, img := range inputs {
		images[i] = entity.Image{
			ID:           uuid.NewString(),
			URL:          img.URL,
			Alt:          img.Alt,
			DisplayOrder: img.DisplayOrder,
		}
	}
	return images
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a URL slug from a title: lowercase, hyphen-separated.
func slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
