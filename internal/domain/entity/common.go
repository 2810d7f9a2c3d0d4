package entity

// Price is a money amount with currency and an optional billing unit
// (per_person, per_group, flat).
type Price struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
	Unit     string  `json:"unit,omitempty" bson:"unit,omitempty"`
}

// RatingSummary is the denormalized review aggregate kept on the reviewed
// entity. Distribution is keyed by the string form of the rating value.
type RatingSummary struct {
	Average      float64        `json:"average" bson:"average"`
	Count        int            `json:"count" bson:"count"`
	Distribution map[string]int `json:"distribution,omitempty" bson:"distribution,omitempty"`
}

type Image struct {
	ID           string `json:"id" bson:"id"`
	URL          string `json:"url" bson:"url"`
	Alt          string `json:"alt,omitempty" bson:"alt,omitempty"`
	DisplayOrder int    `json:"display_order" bson:"displayOrder"`
}
