// Package summarizer provides the extractive fallback used when the
// hosted model is unavailable. It lifts sentences verbatim from the
// source instead of generating text, so it never fails and needs no
// network access.
package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"urdu-digest/textutil"
)

const fallbackSummary = "Unable to generate summary from the provided content."

// minSentenceLen filters out fragments left over from splitting.
const minSentenceLen = 10

// importanceTerms raise a sentence's score by one per occurrence.
var importanceTerms = []string{
	"important", "significant", "significantly", "essential", "crucial",
	"critical", "key", "main", "major", "primary", "fundamental",
	"notable", "research", "study", "shows", "demonstrates", "reveals",
	"found", "results", "evidence", "conclusion", "therefore",
	"consequently", "thus", "because", "impact", "growth", "increase",
	"development", "innovation",
}

// keyPointKeywords mark sentences worth surfacing as key points when the
// content has no explicit list items.
var keyPointKeywords = []string{"key", "important", "main", "significant", "essential", "crucial"}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Result is the structured outcome of a summarization pass. WordCount
// and OriginalLength always describe the cleaned source content, never
// the summary, regardless of which path produced it.
type Result struct {
	Summary        string   `json:"summary"`
	KeyPoints      []string `json:"key_points"`
	WordCount      int      `json:"word_count"`
	OriginalLength int      `json:"original_length"`
}

type scoredSentence struct {
	text  string
	index int
	score int
}

// Summarize produces an extractive summary of content. It never fails:
// empty or unusable input yields a degraded but well-formed Result.
func Summarize(content string) Result {
	cleaned := textutil.CleanText(content)
	res := Result{
		WordCount:      textutil.CountWords(cleaned),
		OriginalLength: len(cleaned),
	}

	sentences := splitSentences(cleaned)
	if len(sentences) == 0 {
		res.Summary = fallbackSummary
		return res
	}

	scored := scoreSentences(sentences)

	// Top min(5, ceil(0.3*n)) by score; ties keep original order.
	take := int(math.Ceil(0.3 * float64(len(scored))))
	if take > 5 {
		take = 5
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	selected := scored[:take]
	// Restore narrative order.
	sort.Slice(selected, func(i, j int) bool { return selected[i].index < selected[j].index })

	parts := make([]string, 0, len(selected))
	for _, s := range selected {
		parts = append(parts, s.text)
	}
	summary := strings.Join(parts, ". ")
	summary = strings.ReplaceAll(summary, "..", ".")
	summary = strings.TrimRight(summary, ".") + "."
	res.Summary = summary

	res.KeyPoints = extractKeyPoints(content, sentences)
	return res
}

func splitSentences(cleaned string) []string {
	var out []string
	for _, raw := range sentenceSplitRe.Split(cleaned, -1) {
		s := strings.TrimSpace(raw)
		if len(s) >= minSentenceLen {
			out = append(out, s)
		}
	}
	return out
}

func scoreSentences(sentences []string) []scoredSentence {
	n := len(sentences)
	scored := make([]scoredSentence, 0, n)
	for i, s := range sentences {
		score := 0
		pos := float64(i)
		if pos < 0.2*float64(n) {
			score += 3 // lead bias
		}
		if pos >= 0.8*float64(n) {
			score += 2 // conclusion bias
		}
		if wc := textutil.CountWords(s); wc >= 8 && wc <= 25 {
			score += 2
		}
		lower := strings.ToLower(s)
		for _, term := range importanceTerms {
			score += strings.Count(lower, term)
		}
		if textutil.DigitGroupCount(s) > 3 {
			score--
		}
		if strings.Count(s, "(")+strings.Count(s, ")") > 2 {
			score--
		}
		scored = append(scored, scoredSentence{text: s, index: i, score: score})
	}
	return scored
}

// extractKeyPoints prefers explicit list items from the raw content, then
// keyword-bearing sentences, then simply the leading sentences.
func extractKeyPoints(content string, sentences []string) []string {
	var points []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !textutil.LooksLikeListItem(line) {
			continue
		}
		item := textutil.CleanText(textutil.StripListMarker(line))
		if len(item) > 10 && len(item) < 150 {
			points = append(points, item)
		}
		if len(points) == 5 {
			return points
		}
	}
	if len(points) > 0 {
		return points
	}

	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, kw := range keyPointKeywords {
			if strings.Contains(lower, kw) {
				points = append(points, s)
				break
			}
		}
		if len(points) == 3 {
			return points
		}
	}
	if len(points) > 0 {
		return points
	}

	for i, s := range sentences {
		if i == 3 {
			break
		}
		points = append(points, s)
	}
	return points
}
