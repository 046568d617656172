package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusFlags represents processing progress of an article
type StatusFlags struct {
	Fetched    bool `bson:"fetched" json:"fetched"`
	Summarized bool `bson:"summarized" json:"summarized"`
	Translated bool `bson:"translated" json:"translated"`
}

// Article is the full digest document for one blog post.
// Collection: articles
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Status      StatusFlags        `bson:"status" json:"status"`
	ViewCount   int64              `bson:"view_count" json:"view_count"`
	URL         string             `bson:"url" json:"url"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	TopImage    string             `bson:"top_image,omitempty" json:"top_image,omitempty"`
	Rendered    bool               `bson:"rendered" json:"rendered"`
	FetchedAt   time.Time          `bson:"fetched_at" json:"fetched_at"`
	Digest      DigestInfo         `bson:"digest" json:"digest"`
	Translation TranslationInfo    `bson:"translation" json:"translation"`
}

// DigestInfo is the denormalized summary snapshot stored under
// articles.digest.
type DigestInfo struct {
	Summary        string    `bson:"summary" json:"summary"`
	KeyPoints      []string  `bson:"key_points" json:"key_points"`
	WordCount      int       `bson:"word_count" json:"word_count"`
	OriginalLength int       `bson:"original_length" json:"original_length"`
	Source         string    `bson:"source" json:"source"`
	ModelName      string    `bson:"model_name,omitempty" json:"model_name,omitempty"`
	GeneratedAt    time.Time `bson:"generated_at" json:"generated_at"`
}

// TranslationInfo is the Urdu rendering stored under
// articles.translation.
type TranslationInfo struct {
	TranslatedText string    `bson:"translated_text" json:"translated_text"`
	Language       string    `bson:"language" json:"language"`
	Source         string    `bson:"source" json:"source"`
	GeneratedAt    time.Time `bson:"generated_at" json:"generated_at"`
}
