// Package services holds the request-level business logic: input
// validation, content fetching, running the digest pipeline and
// persisting results to both stores.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"urdu-digest/dto"
	"urdu-digest/eventbus"
	"urdu-digest/events"
	"urdu-digest/fetcher"
	"urdu-digest/logger"
	"urdu-digest/models"
	"urdu-digest/pipeline"
	"urdu-digest/repositories"
)

// Terminal error classes. The pipeline's own failures (model down,
// malformed responses, low-quality translations) are recovered
// internally and never surface here.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrFetchFailure       = errors.New("fetch failure")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Digest modes accepted by CreateDigestRequest.
const (
	ModeCombined = "combined"
	ModeSeparate = "separate"
)

type DigestService struct {
	fetcher  *fetcher.Fetcher
	pipe     *pipeline.Pipeline
	articles *repositories.ArticleRepository
	digests  *repositories.DigestRepository
	bus      eventbus.EventBus
	topic    string
}

func NewDigestService(
	f *fetcher.Fetcher,
	pipe *pipeline.Pipeline,
	articles *repositories.ArticleRepository,
	digests *repositories.DigestRepository,
	bus eventbus.EventBus,
	topic string,
) *DigestService {
	if bus == nil {
		bus = eventbus.NewNoopEventBus()
	}
	return &DigestService{
		fetcher:  f,
		pipe:     pipe,
		articles: articles,
		digests:  digests,
		bus:      bus,
		topic:    topic,
	}
}

// Create runs the full digest flow for one URL: fetch, summarize,
// translate, persist to Mongo and Postgres, publish the created event.
func (s *DigestService) Create(ctx context.Context, in dto.CreateDigestRequest) (*dto.DigestResponse, error) {
	mode, err := validateRequest(&in)
	if err != nil {
		return nil, err
	}

	article, err := s.fetcher.Fetch(ctx, in.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	res := s.pipe.Digest(ctx, article.Content, mode == ModeCombined)
	now := time.Now()

	doc := &models.Article{
		Status: models.StatusFlags{
			Fetched:    true,
			Summarized: true,
			Translated: true,
		},
		URL:       article.URL,
		Title:     article.Title,
		Content:   article.Content,
		TopImage:  article.TopImage,
		Rendered:  article.Rendered,
		FetchedAt: article.FetchedAt,
		Digest: models.DigestInfo{
			Summary:        res.Summary.Summary,
			KeyPoints:      res.Summary.KeyPoints,
			WordCount:      res.Summary.WordCount,
			OriginalLength: res.Summary.OriginalLength,
			Source:         res.SummarySource,
			GeneratedAt:    now,
		},
		Translation: models.TranslationInfo{
			TranslatedText: res.Translation.TranslatedText,
			Language:       res.Translation.Language,
			Source:         res.Translation.Source,
			GeneratedAt:    now,
		},
	}

	articleID, err := s.articles.UpsertByURL(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: article store: %v", ErrPersistenceFailure, err)
	}
	doc.ID = articleID

	rec := &models.DigestRecord{
		ArticleID:         articleID.Hex(),
		URL:               article.URL,
		Title:             article.Title,
		Summary:           res.Summary.Summary,
		TranslatedText:    res.Translation.TranslatedText,
		SummarySource:     res.SummarySource,
		TranslationSource: res.Translation.Source,
		WordCount:         res.Summary.WordCount,
	}
	digestID, err := s.digests.Insert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: digest store: %v", ErrPersistenceFailure, err)
	}

	s.publishCreated(ctx, digestID, rec)

	saved, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		// The write succeeded; fall back to the in-memory document.
		saved = doc
	}
	out := dto.NewDigestResponse(*saved, digestID)
	return &out, nil
}

// GetByDigestID loads a digest via its numeric Postgres id.
func (s *DigestService) GetByDigestID(ctx context.Context, id int64) (*dto.DigestResponse, error) {
	rec, err := s.digests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(rec.ArticleID)
	if err != nil {
		return nil, err
	}
	article, err := s.articles.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	out := dto.NewDigestResponse(*article, rec.ID)
	return &out, nil
}

// ListRecent returns the latest digests, newest first.
func (s *DigestService) ListRecent(ctx context.Context, limit int) ([]dto.DigestResponse, error) {
	recs, err := s.digests.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DigestResponse, 0, len(recs))
	for _, rec := range recs {
		oid, err := primitive.ObjectIDFromHex(rec.ArticleID)
		if err != nil {
			continue
		}
		article, err := s.articles.FindByID(ctx, oid)
		if err != nil {
			continue
		}
		out = append(out, dto.NewDigestResponse(*article, rec.ID))
	}
	return out, nil
}

// ListArticles returns stored article documents, newest first.
func (s *DigestService) ListArticles(ctx context.Context, page, pageSize int) ([]dto.ArticleDTO, error) {
	items, err := s.articles.List(ctx, repositories.ListArticlesOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleDTO, 0, len(items))
	for _, a := range items {
		out = append(out, dto.NewArticleDTO(a))
	}
	return out, nil
}

// IncrementView bumps the article view counter and publishes the
// viewed event.
func (s *DigestService) IncrementView(ctx context.Context, hexID string) (*dto.ViewCountResponse, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed article id", ErrInvalidInput)
	}

	count, err := s.articles.IncrementViewCount(ctx, oid)
	if err != nil {
		return nil, err
	}

	evt := events.DigestViewedEvent{
		BaseEvent: events.NewBaseEvent(events.DigestViewed, "api"),
		ArticleID: hexID,
		ViewCount: count,
	}
	s.publish(ctx, evt)

	return &dto.ViewCountResponse{ArticleID: hexID, ViewCount: count}, nil
}

// ProbeContentSource checks outbound fetch reachability for the health
// endpoint.
func (s *DigestService) ProbeContentSource(ctx context.Context) error {
	return s.fetcher.Probe(ctx)
}

func (s *DigestService) publishCreated(ctx context.Context, digestID int64, rec *models.DigestRecord) {
	evt := events.DigestCreatedEvent{
		BaseEvent:         events.NewBaseEvent(events.DigestCreated, "api"),
		DigestID:          digestID,
		ArticleID:         rec.ArticleID,
		URL:               rec.URL,
		Title:             rec.Title,
		SummarySource:     rec.SummarySource,
		TranslationSource: rec.TranslationSource,
	}
	s.publish(ctx, evt)
}

// publish serializes and sends an event. Event delivery is best-effort:
// a broker failure never fails the request that produced the event.
func (s *DigestService) publish(ctx context.Context, evt interface{}) {
	data, eventType, err := events.SerializeEvent(evt)
	if err != nil {
		logger.Log.Warnf("failed to serialize event: %v", err)
		return
	}

	var id string
	switch e := evt.(type) {
	case events.DigestCreatedEvent:
		id = e.ID
	case events.DigestViewedEvent:
		id = e.ID
	}

	if err := s.bus.Publish(ctx, s.topic, eventbus.Event{
		ID:      id,
		Type:    string(eventType),
		Payload: data,
	}); err != nil {
		logger.Log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}

func validateRequest(in *dto.CreateDigestRequest) (string, error) {
	raw := strings.TrimSpace(in.URL)
	if raw == "" {
		return "", fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: url must be absolute http(s)", ErrInvalidInput)
	}
	in.URL = raw

	mode := strings.ToLower(strings.TrimSpace(in.Mode))
	if mode == "" {
		mode = ModeCombined
	}
	if mode != ModeCombined && mode != ModeSeparate {
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, in.Mode)
	}
	in.Mode = mode
	return mode, nil
}
