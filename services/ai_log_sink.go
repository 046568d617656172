package services

import (
	"context"

	"urdu-digest/gemini"
	"urdu-digest/logger"
	"urdu-digest/models"
	"urdu-digest/repositories"
)

// AILogSink persists one ai_logs document per model round trip. Sink
// failures are logged and swallowed: monitoring must never break a
// digest request.
type AILogSink struct {
	repo *repositories.AILogRepository
}

func NewAILogSink(repo *repositories.AILogRepository) *AILogSink {
	return &AILogSink{repo: repo}
}

func (s *AILogSink) Record(ctx context.Context, entry *gemini.RequestLog) {
	if s == nil || s.repo == nil || entry == nil {
		return
	}

	doc := models.AILog{
		Operation:      entry.Operation,
		ModelName:      entry.ModelName,
		ModelVersion:   entry.ModelVersion,
		InputTokens:    entry.TokenUsage.InputTokens,
		OutputTokens:   entry.TokenUsage.OutputTokens,
		TotalTokens:    entry.TokenUsage.TotalTokens,
		DurationMs:     entry.LatencyMs,
		Success:        entry.Success,
		InputPrompt:    entry.Prompt,
		OutputResponse: entry.Response,
		RequestedAt:    entry.RequestedAt,
		CompletedAt:    entry.CompletedAt,
	}
	if entry.ErrorMessage != "" {
		msg := entry.ErrorMessage
		doc.ErrorMessage = &msg
	}

	if _, err := s.repo.Insert(ctx, doc); err != nil {
		logger.Log.Warnf("failed to record ai log: %v", err)
	}
}
