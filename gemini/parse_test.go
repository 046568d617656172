package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence(`{"a":1}`))
	assert.Equal(t, "plain text", StripCodeFence("  plain text  "))
}

func TestParseSummaryResponseStrictJSON(t *testing.T) {
	raw := "```json\n{\"summary\":\"X\",\"keyPoints\":[\"a\",\"b\"]}\n```"
	got := ParseSummaryResponse(raw)
	assert.Equal(t, "X", got.Summary)
	assert.Equal(t, []string{"a", "b"}, got.KeyPoints)
	assert.Empty(t, got.SummaryUrdu)
}

func TestParseSummaryResponseJSONWithUrdu(t *testing.T) {
	raw := `{"summary":"X","keyPoints":["a"],"summaryUrdu":"خلاصہ"}`
	got := ParseSummaryResponse(raw)
	assert.Equal(t, "خلاصہ", got.SummaryUrdu)
}

func TestParseSummaryResponseHeuristicFallback(t *testing.T) {
	raw := "Here is the summary: Markets grew.\n- Point one\n- Point two"
	got := ParseSummaryResponse(raw)
	assert.Equal(t, "Markets grew.", got.Summary)
	assert.Equal(t, []string{"Point one", "Point two"}, got.KeyPoints)
}

func TestParseSummaryResponseNumberedKeyPoints(t *testing.T) {
	raw := "Summary: growth continued\n1. First takeaway\n2) Second takeaway"
	got := ParseSummaryResponse(raw)
	assert.Equal(t, "growth continued", got.Summary)
	assert.Equal(t, []string{"First takeaway", "Second takeaway"}, got.KeyPoints)
}

func TestParseSummaryResponseNoSummaryLine(t *testing.T) {
	raw := "First line of prose.\nSecond line of prose.\nThird line of prose.\nFourth line ignored."
	got := ParseSummaryResponse(raw)
	assert.Equal(t, "First line of prose. Second line of prose. Third line of prose.", got.Summary)
}

func TestParseSummaryResponseStructuralMismatchFallsBack(t *testing.T) {
	// valid JSON, but keyPoints is not an array
	raw := `{"summary":"X","keyPoints":"not an array"}`
	got := ParseSummaryResponse(raw)
	// heuristic path: the single line mentions "summary", label strip
	// applies at the first colon
	assert.NotEqual(t, "X", got.Summary)
	assert.NotEmpty(t, got.Summary)
}

func TestParseSummaryResponseIdempotent(t *testing.T) {
	raw := "Here is the summary: Markets grew.\n- Point one"
	first := ParseSummaryResponse(raw)
	second := ParseSummaryResponse(raw)
	assert.Equal(t, first, second)
}

func TestParseCombinedResponseJSONUrdu(t *testing.T) {
	raw := `{"summary":"Markets grew.","keyPoints":["a"],"summaryUrdu":"بازار بڑھے۔"}`
	got := ParseCombinedResponse(raw)
	assert.Equal(t, "Markets grew.", got.Summary)
	assert.Equal(t, "بازار بڑھے۔", got.Translation)
}

func TestParseCombinedResponseScansUrduRuns(t *testing.T) {
	raw := "Summary: Markets grew.\nThe Urdu version: بازار بڑھے۔ that is all."
	got := ParseCombinedResponse(raw)
	assert.Equal(t, "Markets grew.", got.Summary)
	assert.Equal(t, "بازار بڑھے۔", got.Translation)
}

func TestParseCombinedResponseDictionaryLastResort(t *testing.T) {
	raw := "Summary: the world is good"
	got := ParseCombinedResponse(raw)
	assert.Equal(t, "the world is good", got.Summary)
	// no Urdu anywhere in the response: dictionary fallback must differ
	// from the plain summary
	assert.NotEqual(t, got.Summary, got.Translation)
	assert.NotEmpty(t, got.Translation)
}

func TestParseCombinedResponseReportsOrigin(t *testing.T) {
	model := ParseCombinedResponse(`{"summary":"X","keyPoints":["a"],"summaryUrdu":"خلاصہ"}`)
	assert.Equal(t, TranslationFromModel, model.TranslationOrigin)

	runs := ParseCombinedResponse("Summary: Markets grew.\nThe Urdu version: بازار بڑھے۔ that is all.")
	assert.Equal(t, TranslationFromUrduRuns, runs.TranslationOrigin)

	dict := ParseCombinedResponse("Summary: the world is good")
	assert.Equal(t, TranslationFromDictionary, dict.TranslationOrigin)
}
