package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"urdu-digest/textutil"
	"urdu-digest/translator"
)

// ParsedSummary is the best-effort structure extracted from a model
// response. Parsing never fails: malformed output degrades to heuristic
// line extraction instead of raising.
type ParsedSummary struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	SummaryUrdu string   `json:"summaryUrdu,omitempty"`
}

// Translation provenance layers reported by ParseCombinedResponse.
const (
	TranslationFromModel      = "model"
	TranslationFromUrduRuns   = "urdu_runs"
	TranslationFromDictionary = "dictionary"
)

// ParsedCombined adds the translation extracted in combined mode.
// TranslationOrigin records which parsing layer produced it, so callers
// can label the result truthfully when the dictionary last resort ran.
type ParsedCombined struct {
	Summary           string
	KeyPoints         []string
	Translation       string
	TranslationOrigin string
}

var codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// StripCodeFence removes a markdown code-fence wrapper (with optional
// json tag) around the raw model text, if present.
func StripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := codeFenceRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return raw
}

// ParseSummaryResponse extracts {summary, keyPoints, summaryUrdu?} from
// free-form model text. Strict JSON is attempted first; on parse failure
// or structural mismatch it falls back to line-based extraction. The
// model frequently ignores "JSON only" instructions, so degrading
// gracefully here is part of the contract.
func ParseSummaryResponse(raw string) ParsedSummary {
	cleaned := StripCodeFence(raw)

	if parsed, ok := tryStrictJSON(cleaned); ok {
		return parsed
	}
	return parseLines(cleaned)
}

// ParseCombinedResponse extracts summary, key points and an Urdu
// translation from a combined-mode response. When the model produced no
// Urdu at all, the dictionary translator renders the extracted summary
// as the last resort so the result is always populated.
func ParseCombinedResponse(raw string) ParsedCombined {
	parsed := ParseSummaryResponse(raw)

	translation := strings.TrimSpace(parsed.SummaryUrdu)
	origin := TranslationFromModel
	if translation == "" {
		if runs := textutil.ExtractUrduRuns(StripCodeFence(raw)); len(runs) > 0 {
			translation = strings.Join(runs, " ")
			origin = TranslationFromUrduRuns
		}
	}
	if translation == "" {
		translation = translator.TranslateStatic(parsed.Summary)
		origin = TranslationFromDictionary
	}

	return ParsedCombined{
		Summary:           parsed.Summary,
		KeyPoints:         parsed.KeyPoints,
		Translation:       translation,
		TranslationOrigin: origin,
	}
}

// tryStrictJSON reports ok only when the text is valid JSON carrying a
// string summary and an array keyPoints.
func tryStrictJSON(cleaned string) (ParsedSummary, bool) {
	var probe struct {
		Summary     *string         `json:"summary"`
		KeyPoints   json.RawMessage `json:"keyPoints"`
		SummaryUrdu string          `json:"summaryUrdu"`
	}
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return ParsedSummary{}, false
	}
	if probe.Summary == nil {
		return ParsedSummary{}, false
	}
	if !strings.HasPrefix(strings.TrimSpace(string(probe.KeyPoints)), "[") {
		return ParsedSummary{}, false
	}
	var points []string
	if err := json.Unmarshal(probe.KeyPoints, &points); err != nil {
		return ParsedSummary{}, false
	}
	return ParsedSummary{
		Summary:     *probe.Summary,
		KeyPoints:   points,
		SummaryUrdu: probe.SummaryUrdu,
	}, true
}

const maxHeuristicKeyPoints = 5

// parseLines is the heuristic fallback: a line mentioning "summary"
// becomes the summary (label stripped), list-marker lines become key
// points, and with no summary line the first three lines are joined.
func parseLines(cleaned string) ParsedSummary {
	var out ParsedSummary
	var firstLines []string

	for _, raw := range strings.Split(cleaned, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(firstLines) < 3 {
			firstLines = append(firstLines, line)
		}

		if out.Summary == "" && strings.Contains(strings.ToLower(line), "summary") {
			out.Summary = stripSummaryLabel(line)
			continue
		}
		if textutil.LooksLikeListItem(line) && len(out.KeyPoints) < maxHeuristicKeyPoints {
			out.KeyPoints = append(out.KeyPoints, textutil.StripListMarker(line))
		}
	}

	if out.Summary == "" {
		out.Summary = strings.Join(firstLines, " ")
	}
	return out
}

// stripSummaryLabel drops everything through the label colon, so
// "Here is the summary: Markets grew." yields "Markets grew.".
func stripSummaryLabel(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return strings.TrimSpace(line)
}
