package models

import "time"

// DigestRecord is the relational row kept in Postgres alongside the
// Mongo article document. Its auto-incremented ID is the numeric handle
// exposed by the API; ArticleID links back to the Mongo document.
type DigestRecord struct {
	ID                int64     `json:"id"`
	ArticleID         string    `json:"article_id"`
	URL               string    `json:"url"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary"`
	TranslatedText    string    `json:"translated_text"`
	SummarySource     string    `json:"summary_source"`
	TranslationSource string    `json:"translation_source"`
	WordCount         int       `json:"word_count"`
	CreatedAt         time.Time `json:"created_at"`
}
