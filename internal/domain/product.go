package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories accepted by the catalog.
const (
	CategoryCourse   = "course"
	CategoryPrompt   = "prompt"
	CategoryVideo    = "video"
	CategoryTemplate = "template"
	CategoryBundle   = "bundle"
	CategoryOther    = "other"
)

// Difficulty levels for course-like products.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Product is a catalog entry. Slug is the lookup key; uniqueness is assumed
// by callers but not enforced by the store.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Level       string             `json:"level,omitempty" bson:"level,omitempty"`
	Rating      float64            `json:"rating" bson:"rating"`
	RatingCount int                `json:"rating_count" bson:"rating_count"`
	CoverURL    string             `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	Contents    []string           `json:"contents,omitempty" bson:"contents,omitempty"`
	Benefits    []string           `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Stamp sets both timestamps to the same instant. Products are append-only,
// so updated_at never diverges from created_at.
func (p *Product) Stamp(now time.Time) {
	p.CreatedAt = now
	p.UpdatedAt = now
}
