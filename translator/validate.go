package translator

import "urdu-digest/textutil"

// IssueCode identifies a single validation finding.
type IssueCode string

const (
	// IssueNoScript: the translation carries zero Urdu-range runes.
	// The only issue that triggers fallback substitution.
	IssueNoScript IssueCode = "no_script"
	// IssueTooShort: translation shorter than 30% of the original.
	IssueTooShort IssueCode = "too_short"
	// IssueTooEnglish: too many untranslated Latin word runs remain.
	IssueTooEnglish IssueCode = "too_english"
)

// ValidationOutcome is ephemeral: it only steers fallback decisions and
// is never persisted.
type ValidationOutcome struct {
	IsValid bool
	Issues  []IssueCode
}

// Has reports whether the outcome contains the given issue.
func (o ValidationOutcome) Has(code IssueCode) bool {
	for _, c := range o.Issues {
		if c == code {
			return true
		}
	}
	return false
}

// Validate heuristically judges whether translated is an acceptable Urdu
// rendering of original. Checks are independent and all of them run;
// issues accumulate rather than short-circuit. Pure, never fails.
func Validate(original, translated string) ValidationOutcome {
	var issues []IssueCode

	if !textutil.ContainsUrduScript(translated) {
		issues = append(issues, IssueNoScript)
	}
	if float64(len(translated)) < 0.3*float64(len(original)) {
		issues = append(issues, IssueTooShort)
	}
	if float64(textutil.LatinRunCount(translated)) > 0.7*float64(textutil.CountWords(original)) {
		issues = append(issues, IssueTooEnglish)
	}

	return ValidationOutcome{IsValid: len(issues) == 0, Issues: issues}
}
