package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Quarterly Market Review</title></head>
<body>
<article>
<h1>Quarterly Market Review</h1>
<p>The market grew strongly this quarter, driven by technology stocks and renewed consumer confidence across every major region.</p>
<p>Analysts expect further growth next year, although supply chain constraints remain a significant concern for manufacturers.</p>
<p>The research shows important structural changes in trading behavior, with retail investors taking a much larger share of daily volume.</p>
</article>
</body>
</html>`

func TestParseHtmlWithReadability(t *testing.T) {
	article, err := ParseHtmlWithReadability(articleHTML)
	assert.NoError(t, err)
	assert.Contains(t, article.PlainTextContent, "market grew strongly")
	assert.Contains(t, article.PlainTextContent, "structural changes")
}

func TestParseArticleOfHTMLPrefersFirstNonEmpty(t *testing.T) {
	article, err := ParseArticleOfHTML(articleHTML)
	assert.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(article.PlainTextContent))
}

func TestParseArticleOfHTMLEmptyPage(t *testing.T) {
	_, err := ParseArticleOfHTML(`<html><head></head><body></body></html>`)
	assert.Error(t, err)
}
