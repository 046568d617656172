package services

import (
	"fmt"

	"urdu-digest/dto"
	"urdu-digest/feeder"
)

// FeedService lists recent entries of a blog's RSS feed so clients can
// pick URLs to digest.
type FeedService struct{}

func NewFeedService() *FeedService { return &FeedService{} }

func (s *FeedService) List(rssURL string, limit int) ([]dto.FeedItemDTO, error) {
	if rssURL == "" {
		return nil, fmt.Errorf("%w: feed url is required", ErrInvalidInput)
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	items, err := feeder.FetchRssFeeds(rssURL, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	out := make([]dto.FeedItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FeedItemDTO{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: item.PublishedAt,
		})
	}
	return out, nil
}
