package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"urdu-digest/models"
)

// DigestRepository persists digest rows in Postgres. The BIGSERIAL id
// assigned on insert is the numeric handle returned to API consumers.
type DigestRepository struct {
	pool *pgxpool.Pool
}

func NewDigestRepository(pool *pgxpool.Pool) *DigestRepository {
	return &DigestRepository{pool: pool}
}

// Insert stores a digest row and returns the generated id.
func (r *DigestRepository) Insert(ctx context.Context, rec *models.DigestRecord) (int64, error) {
	const q = `
		INSERT INTO digests
			(article_id, url, title, summary, translated_text,
			 summary_source, translation_source, word_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, q,
		rec.ArticleID,
		rec.URL,
		rec.Title,
		rec.Summary,
		rec.TranslatedText,
		rec.SummarySource,
		rec.TranslationSource,
		rec.WordCount,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (r *DigestRepository) FindByID(ctx context.Context, id int64) (*models.DigestRecord, error) {
	const q = `
		SELECT id, article_id, url, title, summary, translated_text,
		       summary_source, translation_source, word_count, created_at
		FROM digests WHERE id = $1`

	var rec models.DigestRecord
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&rec.ID,
		&rec.ArticleID,
		&rec.URL,
		&rec.Title,
		&rec.Summary,
		&rec.TranslatedText,
		&rec.SummarySource,
		&rec.TranslationSource,
		&rec.WordCount,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecent returns the latest digest rows, newest first.
func (r *DigestRepository) ListRecent(ctx context.Context, limit int) ([]models.DigestRecord, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	const q = `
		SELECT id, article_id, url, title, summary, translated_text,
		       summary_source, translation_source, word_count, created_at
		FROM digests ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.DigestRecord
	for rows.Next() {
		var rec models.DigestRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.ArticleID,
			&rec.URL,
			&rec.Title,
			&rec.Summary,
			&rec.TranslatedText,
			&rec.SummarySource,
			&rec.TranslationSource,
			&rec.WordCount,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}
