// Package fetcher downloads a blog page and extracts its readable text.
// A static HTTP fetch is tried first; when the extracted text is too
// short (client-side-rendered blogs) it optionally falls back to
// headless-Chrome rendering.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"urdu-digest/config"
	"urdu-digest/logger"
	"urdu-digest/parser"
	"urdu-digest/renderer"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

// maxBodyBytes caps page downloads at 10 MiB.
const maxBodyBytes = 10 << 20

// ErrInsufficientContent means the page was reachable but no usable
// article text could be extracted from it.
var ErrInsufficientContent = errors.New("insufficient article content")

type FetchedArticle struct {
	URL        string
	Title      string
	Content    string
	TopImage   string
	FetchedAt  time.Time
	DurationMs int64
	Rendered   bool
}

type Fetcher struct {
	client          *http.Client
	minContentChars int
	renderFallback  bool
}

func New(cfg config.FetchConfig) *Fetcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	minChars := cfg.MinContentChars
	if minChars <= 0 {
		minChars = 200
	}
	return &Fetcher{
		client:          &http.Client{Timeout: timeout},
		minContentChars: minChars,
		renderFallback:  cfg.RenderFallback,
	}
}

// Fetch downloads the URL and extracts title and plain text. It returns
// an error for network failures, non-2xx statuses and pages with no
// extractable text; it never invents content.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*FetchedArticle, error) {
	start := time.Now()

	htmlStr, err := f.download(ctx, url)
	if err != nil {
		return nil, err
	}

	article, rendered, err := f.extract(ctx, url, htmlStr)
	if err != nil {
		return nil, err
	}

	title := article.Title
	if title == "" {
		title = titleFromHTML(htmlStr)
	}

	return &FetchedArticle{
		URL:        url,
		Title:      title,
		Content:    article.PlainTextContent,
		TopImage:   article.TopImage,
		FetchedAt:  start,
		DurationMs: time.Since(start).Milliseconds(),
		Rendered:   rendered,
	}, nil
}

func (f *Fetcher) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}
	return string(body), nil
}

// extract parses the static HTML; when the result is below the content
// threshold and render fallback is enabled, it re-fetches through
// headless Chrome and parses again.
func (f *Fetcher) extract(ctx context.Context, url, htmlStr string) (*parser.ParsedArticle, bool, error) {
	article, err := parser.ParseArticleOfHTML(htmlStr)
	if err == nil && len(strings.TrimSpace(article.PlainTextContent)) >= f.minContentChars {
		return article, false, nil
	}

	if !f.renderFallback {
		if err != nil {
			return nil, false, ErrInsufficientContent
		}
		if strings.TrimSpace(article.PlainTextContent) == "" {
			return nil, false, ErrInsufficientContent
		}
		// short but non-empty static text is still usable
		return article, false, nil
	}

	logger.InfoWithFields("static fetch too thin, rendering with headless chrome", logger.Fields{
		"url":       url,
		"min_chars": f.minContentChars,
	})
	renderedHTML, renderErr := renderer.RenderHTML(ctx, url)
	if renderErr != nil {
		logger.Log.Warnf("render fallback failed for %s: %v", url, renderErr)
		if err == nil && strings.TrimSpace(article.PlainTextContent) != "" {
			return article, false, nil
		}
		return nil, false, ErrInsufficientContent
	}

	renderedArticle, err := parser.ParseArticleOfHTML(renderedHTML)
	if err != nil || strings.TrimSpace(renderedArticle.PlainTextContent) == "" {
		if article != nil && strings.TrimSpace(article.PlainTextContent) != "" {
			return article, false, nil
		}
		return nil, false, ErrInsufficientContent
	}
	return renderedArticle, true, nil
}

// probeURL answers 204 without a body; used only for the reachability
// probe on the health surface.
const probeURL = "https://clients3.google.com/generate_204"

// Probe reports whether outbound content fetching is likely to work.
func (f *Fetcher) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("probe returned status %d", resp.StatusCode)
	}
	return nil
}

// titleFromHTML pulls <title> (or og:title) when the extractors did not
// find one.
func titleFromHTML(htmlStr string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
