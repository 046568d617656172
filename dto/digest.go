package dto

import (
	"time"

	"urdu-digest/models"
)

// CreateDigestRequest is the POST /digests payload. Mode selects how
// the model is called: "combined" (default, one round trip) or
// "separate" (summarize then translate as two calls).
type CreateDigestRequest struct {
	URL  string `json:"url" binding:"required"`
	Mode string `json:"mode,omitempty"`
}

// DigestResponse flattens the persisted article document plus the
// numeric Postgres row id into one API shape. ArticleID is the Mongo
// ObjectID hex; DigestID is the relational row.
type DigestResponse struct {
	ArticleID         string    `json:"article_id"`
	DigestID          int64     `json:"digest_id"`
	URL               string    `json:"url"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary"`
	KeyPoints         []string  `json:"key_points"`
	TranslatedSummary string    `json:"translated_summary"`
	Language          string    `json:"language"`
	SummarySource     string    `json:"summary_source"`
	TranslationSource string    `json:"translation_source"`
	WordCount         int       `json:"word_count"`
	OriginalLength    int       `json:"original_length"`
	ViewCount         int64     `json:"view_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewDigestResponse maps an article document and its digest row id.
func NewDigestResponse(a models.Article, digestID int64) DigestResponse {
	return DigestResponse{
		ArticleID:         a.ID.Hex(),
		DigestID:          digestID,
		URL:               a.URL,
		Title:             a.Title,
		Summary:           a.Digest.Summary,
		KeyPoints:         a.Digest.KeyPoints,
		TranslatedSummary: a.Translation.TranslatedText,
		Language:          a.Translation.Language,
		SummarySource:     a.Digest.Source,
		TranslationSource: a.Translation.Source,
		WordCount:         a.Digest.WordCount,
		OriginalLength:    a.Digest.OriginalLength,
		ViewCount:         a.ViewCount,
		CreatedAt:         a.CreatedAt,
	}
}

// ArticleDTO is the lightweight listing shape for GET /articles. It
// skips the stored content body and the relational digest id.
type ArticleDTO struct {
	ID                string    `json:"id"`
	URL               string    `json:"url"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary"`
	TranslatedSummary string    `json:"translated_summary"`
	Language          string    `json:"language"`
	ViewCount         int64     `json:"view_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewArticleDTO constructs ArticleDTO from models.Article
func NewArticleDTO(a models.Article) ArticleDTO {
	return ArticleDTO{
		ID:                a.ID.Hex(),
		URL:               a.URL,
		Title:             a.Title,
		Summary:           a.Digest.Summary,
		TranslatedSummary: a.Translation.TranslatedText,
		Language:          a.Translation.Language,
		ViewCount:         a.ViewCount,
		CreatedAt:         a.CreatedAt,
	}
}

// FeedItemDTO is one RSS entry in GET /feeds responses.
type FeedItemDTO struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
}

// ViewCountResponse is the POST /digests/:id/view result.
type ViewCountResponse struct {
	ArticleID string `json:"article_id"`
	ViewCount int64  `json:"view_count"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
