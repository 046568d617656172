package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"urdu-digest/config"
)

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<title>Quarterly Market Review</title>
<meta property="og:title" content="Quarterly Market Review">
</head>
<body>
<article>
<h1>Quarterly Market Review</h1>
<p>The market grew strongly this quarter, driven by technology stocks and renewed consumer confidence across every major region.</p>
<p>Analysts expect further growth next year, although supply chain constraints remain a significant concern for manufacturers.</p>
<p>The research shows important structural changes in trading behavior, with retail investors taking a much larger share of daily volume.</p>
</article>
</body>
</html>`

func newTestFetcher() *Fetcher {
	return New(config.FetchConfig{TimeoutSeconds: 5, MinContentChars: 50, RenderFallback: false})
}

func TestFetchExtractsTitleAndContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	article, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.Equal(t, "Quarterly Market Review", article.Title)
	assert.Contains(t, article.Content, "market grew strongly")
	assert.False(t, article.Rendered)
	assert.False(t, article.FetchedAt.IsZero())
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFetchUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestFetcher().Fetch(context.Background(), url)
	assert.Error(t, err)
}

func TestFetchEmptyPageIsInsufficient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Empty</title></head><body></body></html>`))
	}))
	defer srv.Close()

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrInsufficientContent)
}

func TestTitleFromHTMLPrefersOpenGraph(t *testing.T) {
	title := titleFromHTML(`<html><head>
		<meta property="og:title" content="OG Title">
		<title>Doc Title</title>
	</head><body></body></html>`)
	assert.Equal(t, "OG Title", title)

	title = titleFromHTML(`<html><head><title>Doc Title</title></head><body></body></html>`)
	assert.Equal(t, "Doc Title", title)
}
