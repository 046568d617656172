package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsProperUrdu(t *testing.T) {
	original := "Technology is advancing rapidly across the world."
	translated := "ٹیکنالوجی پوری دنیا میں تیزی سے ترقی کر رہی ہے۔"
	out := Validate(original, translated)
	assert.True(t, out.IsValid)
	assert.Empty(t, out.Issues)
}

func TestValidateNoScriptAlwaysFlagged(t *testing.T) {
	cases := []string{
		"Technology is advancing.",
		"",
		"1234 5678",
		strings.Repeat("latin text only ", 20),
	}
	for _, translated := range cases {
		out := Validate("Technology is advancing.", translated)
		assert.False(t, out.IsValid)
		assert.True(t, out.Has(IssueNoScript), "translated=%q", translated)
	}
}

func TestValidateTooShort(t *testing.T) {
	original := strings.Repeat("a long original sentence ", 10)
	out := Validate(original, "اردو")
	assert.True(t, out.Has(IssueTooShort))
	assert.False(t, out.Has(IssueNoScript))
}

func TestValidateTooEnglish(t *testing.T) {
	original := "one two three four"
	// Urdu present so NoScript stays clear, but far more Latin runs than
	// 70% of the original word count.
	translated := "اردو one two three four five six seven"
	out := Validate(original, translated)
	assert.True(t, out.Has(IssueTooEnglish))
	assert.False(t, out.Has(IssueNoScript))
}

func TestValidateIssuesAccumulate(t *testing.T) {
	original := strings.Repeat("word ", 40)
	out := Validate(original, "tiny english")
	assert.False(t, out.IsValid)
	assert.True(t, out.Has(IssueNoScript))
	assert.True(t, out.Has(IssueTooShort))
}
