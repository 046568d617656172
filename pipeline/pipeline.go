// Package pipeline orchestrates summarization and translation: it tries
// the hosted model first and falls back to the local extractive
// summarizer and dictionary translator whenever the model is
// unavailable or its output fails validation. Fallback recoveries are
// silent to the caller; only logs show them.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"urdu-digest/gemini"
	"urdu-digest/logger"
	"urdu-digest/quota"
	"urdu-digest/retry"
	"urdu-digest/summarizer"
	"urdu-digest/textutil"
	"urdu-digest/translator"
)

// LanguageUrdu is the only target language this pipeline produces.
const LanguageUrdu = "urdu"

// Source labels report which strategy produced a result.
const (
	SourceGemini     = "gemini"
	SourceExtractive = "extractive"
	SourceDictionary = "dictionary"
)

// Quota limiter names, one per outbound operation.
const (
	quotaSummarize = "summarize"
	quotaTranslate = "translate"
	quotaCombined  = "combined"
)

var errQuotaExhausted = errors.New("daily llm quota exhausted")

// AIClient is the outbound model boundary. Implementations may fail on
// network, auth or quota errors; returned text is never assumed to be
// valid JSON.
type AIClient interface {
	Summarize(ctx context.Context, text string) (string, *gemini.RequestLog, error)
	Translate(ctx context.Context, text string) (string, *gemini.RequestLog, error)
	SummarizeAndTranslate(ctx context.Context, text string) (string, *gemini.RequestLog, error)
}

// LogSink receives one record per model round trip, failures included.
type LogSink interface {
	Record(ctx context.Context, entry *gemini.RequestLog)
}

// TranslationResult is the structured outcome of a translation pass.
type TranslationResult struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	Language       string `json:"language"`
	Source         string `json:"source"`
}

// DigestResult bundles a summary with its Urdu rendering.
type DigestResult struct {
	Summary       summarizer.Result
	SummarySource string
	Translation   TranslationResult
}

type Options struct {
	// TranslateAttempts bounds translate-only model retries (default 2).
	TranslateAttempts int
	// TranslateBackoff is the initial retry backoff (default 1s),
	// doubled per attempt.
	TranslateBackoff time.Duration
}

type Pipeline struct {
	ai     AIClient
	quotas *quota.Registry
	logs   LogSink

	translateAttempts int
	translateBackoff  time.Duration
}

// New builds a pipeline. ai may be nil, which forces every request onto
// the local fallbacks; logs may be nil to disable call logging.
func New(ai AIClient, quotas *quota.Registry, logs LogSink, opts Options) *Pipeline {
	attempts := opts.TranslateAttempts
	if attempts <= 0 {
		attempts = 2
	}
	backoff := opts.TranslateBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	if quotas == nil {
		quotas = quota.NewRegistry(0, 0)
	}
	return &Pipeline{
		ai:                ai,
		quotas:            quotas,
		logs:              logs,
		translateAttempts: attempts,
		translateBackoff:  backoff,
	}
}

// summarizeStrategy and translateStrategy make the fallback cascade an
// explicit ordered list instead of nested error handling.
type summarizeStrategy struct {
	name string
	run  func(ctx context.Context, cleaned string) (summarizer.Result, error)
}

type translateStrategy struct {
	name string
	run  func(ctx context.Context, text string) (string, error)
}

// Summarize runs the summarize-only path: model first, extractive
// fallback on any model failure. Never fails. WordCount and
// OriginalLength always describe the cleaned input, whichever strategy
// produced the summary.
func (p *Pipeline) Summarize(ctx context.Context, content string) (summarizer.Result, string) {
	cleaned := textutil.CleanText(content)

	strategies := []summarizeStrategy{
		{name: SourceGemini, run: p.aiSummarize},
		{name: SourceExtractive, run: func(_ context.Context, c string) (summarizer.Result, error) {
			return summarizer.Summarize(c), nil
		}},
	}

	for _, s := range strategies {
		res, err := s.run(ctx, cleaned)
		if err != nil {
			logger.Log.Warnf("summarize strategy %s failed, falling back: %v", s.name, err)
			continue
		}
		res.WordCount = textutil.CountWords(cleaned)
		res.OriginalLength = len(cleaned)
		return res, s.name
	}

	// Unreachable: the extractive strategy never fails.
	return summarizer.Summarize(cleaned), SourceExtractive
}

// Translate runs the translate-only path: up to translateAttempts model
// calls with exponential backoff, then validation; the dictionary
// substitutes when the model output carries no Urdu script at all or
// every attempt raised. Never fails.
func (p *Pipeline) Translate(ctx context.Context, text string) TranslationResult {
	strategies := []translateStrategy{
		{name: SourceGemini, run: p.aiTranslate},
		{name: SourceDictionary, run: func(_ context.Context, t string) (string, error) {
			return translator.TranslateStatic(t), nil
		}},
	}

	for _, s := range strategies {
		translated, err := s.run(ctx, text)
		if err != nil {
			logger.Log.Warnf("translate strategy %s failed, falling back: %v", s.name, err)
			continue
		}
		return TranslationResult{
			OriginalText:   text,
			TranslatedText: translated,
			Language:       LanguageUrdu,
			Source:         s.name,
		}
	}

	// Unreachable: the dictionary strategy never fails.
	return TranslationResult{
		OriginalText:   text,
		TranslatedText: translator.TranslateStatic(text),
		Language:       LanguageUrdu,
		Source:         SourceDictionary,
	}
}

// Digest produces summary plus translation. Combined mode spends a
// single model round trip; on a model exception it degrades to the two
// separate paths (which carry their own fallbacks), so it never fails.
func (p *Pipeline) Digest(ctx context.Context, content string, combined bool) DigestResult {
	if combined {
		if res, err := p.combinedDigest(ctx, content); err == nil {
			return res
		} else {
			logger.Log.Warnf("combined digest failed, degrading to separate calls: %v", err)
		}
	}

	sum, source := p.Summarize(ctx, content)
	tr := p.Translate(ctx, sum.Summary)
	return DigestResult{Summary: sum, SummarySource: source, Translation: tr}
}

func (p *Pipeline) aiSummarize(ctx context.Context, cleaned string) (summarizer.Result, error) {
	if p.ai == nil || cleaned == "" {
		return summarizer.Result{}, errors.New("model unavailable")
	}
	ok, err := p.quotas.WaitAndReserve(ctx, quotaSummarize)
	if err != nil {
		return summarizer.Result{}, err
	}
	if !ok {
		return summarizer.Result{}, errQuotaExhausted
	}

	raw, reqLog, err := p.ai.Summarize(ctx, cleaned)
	p.record(ctx, reqLog)
	if err != nil {
		return summarizer.Result{}, err
	}

	parsed := gemini.ParseSummaryResponse(raw)
	// A response that parses to nothing (whitespace-only model output)
	// is a failure, not a success with an empty summary: the cascade
	// must fall through to the extractive strategy.
	if strings.TrimSpace(parsed.Summary) == "" {
		return summarizer.Result{}, errors.New("model response yielded no summary")
	}
	return summarizer.Result{Summary: parsed.Summary, KeyPoints: parsed.KeyPoints}, nil
}

func (p *Pipeline) aiTranslate(ctx context.Context, text string) (string, error) {
	if p.ai == nil || text == "" {
		return "", errors.New("model unavailable")
	}

	var raw string
	err := retry.Do(ctx, retry.Config{
		MaxAttempts: p.translateAttempts,
		Delay:       p.translateBackoff,
		Backoff:     true,
	}, func() error {
		ok, err := p.quotas.WaitAndReserve(ctx, quotaTranslate)
		if err != nil {
			return err
		}
		if !ok {
			return errQuotaExhausted
		}
		var reqLog *gemini.RequestLog
		raw, reqLog, err = p.ai.Translate(ctx, text)
		p.record(ctx, reqLog)
		return err
	})
	if err != nil {
		return "", err
	}

	translated := textutil.NormalizeTranslation(raw)
	outcome := translator.Validate(text, translated)
	if outcome.Has(translator.IssueNoScript) {
		return "", errors.New("translation carries no urdu script")
	}
	p.warnNonBlocking(outcome)
	return translated, nil
}

func (p *Pipeline) combinedDigest(ctx context.Context, content string) (DigestResult, error) {
	cleaned := textutil.CleanText(content)
	if p.ai == nil || cleaned == "" {
		return DigestResult{}, errors.New("model unavailable")
	}
	ok, err := p.quotas.WaitAndReserve(ctx, quotaCombined)
	if err != nil {
		return DigestResult{}, err
	}
	if !ok {
		return DigestResult{}, errQuotaExhausted
	}

	raw, reqLog, err := p.ai.SummarizeAndTranslate(ctx, cleaned)
	p.record(ctx, reqLog)
	if err != nil {
		return DigestResult{}, err
	}

	parsed := gemini.ParseCombinedResponse(raw)
	if strings.TrimSpace(parsed.Summary) == "" {
		return DigestResult{}, errors.New("model response yielded no summary")
	}

	translated := textutil.NormalizeTranslation(parsed.Translation)
	source := SourceGemini
	if parsed.TranslationOrigin == gemini.TranslationFromDictionary {
		// The parser already ran the dictionary last resort; the label
		// must say so even though the round trip itself succeeded.
		source = SourceDictionary
	}

	// Validation runs against the parsed summary, not the original
	// content and not the dictionary fallback.
	outcome := translator.Validate(parsed.Summary, translated)
	if outcome.Has(translator.IssueNoScript) {
		translated = translator.TranslateStatic(parsed.Summary)
		source = SourceDictionary
	} else {
		p.warnNonBlocking(outcome)
	}

	return DigestResult{
		Summary: summarizer.Result{
			Summary:        parsed.Summary,
			KeyPoints:      parsed.KeyPoints,
			WordCount:      textutil.CountWords(cleaned),
			OriginalLength: len(cleaned),
		},
		SummarySource: SourceGemini,
		Translation: TranslationResult{
			OriginalText:   parsed.Summary,
			TranslatedText: translated,
			Language:       LanguageUrdu,
			Source:         source,
		},
	}, nil
}

// warnNonBlocking logs TooShort/TooEnglish findings. They deliberately
// do not trigger fallback: imperfect-but-present Urdu beats a
// guaranteed-worse dictionary pass.
func (p *Pipeline) warnNonBlocking(outcome translator.ValidationOutcome) {
	for _, issue := range outcome.Issues {
		if issue == translator.IssueNoScript {
			continue
		}
		logger.WarnWithFields("translation quality issue (non-blocking)", logger.Fields{
			"issue": string(issue),
		})
	}
}

func (p *Pipeline) record(ctx context.Context, entry *gemini.RequestLog) {
	if p.logs == nil || entry == nil {
		return
	}
	p.logs.Record(ctx, entry)
}
