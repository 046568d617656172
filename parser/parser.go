// Package parser extracts readable article text from raw HTML.
// go-readability is the primary extractor; trafilatura and goose are
// kept as alternates for pages readability handles poorly.
package parser

import (
	"errors"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

type ParsedArticle struct {
	Title            string
	PlainTextContent string
	TopImage         string
}

func ParseHtmlWithReadability(htmlStr string) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title:            article.Title,
		PlainTextContent: article.TextContent,
		TopImage:         article.Image,
	}, nil
}

func ParseHtmlWithTrafilatura(htmlStr string) (*ParsedArticle, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedArticle{
		Title:            article.Metadata.Title,
		PlainTextContent: article.ContentText,
		TopImage:         article.Metadata.Image,
	}, nil
}

func ParseHtmlWithGoose(htmlStr string) (*ParsedArticle, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title:            article.Title,
		PlainTextContent: article.CleanedText,
		TopImage:         article.TopImage,
	}, nil
}

// ParseArticleOfHTML runs the extractors in order of preference and
// returns the first non-empty result.
func ParseArticleOfHTML(htmlStr string) (*ParsedArticle, error) {
	extractors := []func(string) (*ParsedArticle, error){
		ParseHtmlWithReadability,
		ParseHtmlWithTrafilatura,
		ParseHtmlWithGoose,
	}
	for _, extract := range extractors {
		article, err := extract(htmlStr)
		if err != nil {
			continue
		}
		if strings.TrimSpace(article.PlainTextContent) != "" {
			return article, nil
		}
	}
	return nil, errors.New("no extractor produced article text")
}
