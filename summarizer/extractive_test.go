package summarizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"urdu-digest/textutil"
)

func TestSummarizeEmptyInput(t *testing.T) {
	res := Summarize("")
	assert.Equal(t, "Unable to generate summary from the provided content.", res.Summary)
	assert.Empty(t, res.KeyPoints)
	assert.Zero(t, res.WordCount)
	assert.Zero(t, res.OriginalLength)
}

func TestSummarizeCountsDescribeOriginalContent(t *testing.T) {
	content := "The first sentence talks about markets. The second sentence adds detail about trading volumes. " +
		"The third sentence closes the argument with a conclusion."
	res := Summarize(content)

	cleaned := textutil.CleanText(content)
	assert.Equal(t, textutil.CountWords(cleaned), res.WordCount)
	assert.Equal(t, len(cleaned), res.OriginalLength)
	assert.NotEmpty(t, res.Summary)
}

func TestSummarizeKeyPointsCappedAtFive(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "- bullet point number %d with enough text\n", i)
	}
	b.WriteString("A closing sentence that is long enough to qualify as a candidate.")
	res := Summarize(b.String())
	assert.LessOrEqual(t, len(res.KeyPoints), 5)
	assert.Len(t, res.KeyPoints, 5)
}

func TestSummarizeListItemsPreferred(t *testing.T) {
	content := "Intro sentence that is long enough to keep around here.\n" +
		"- First listed takeaway for readers\n" +
		"2) Second listed takeaway for readers\n" +
		"Closing sentence that is also long enough to keep."
	res := Summarize(content)
	assert.Equal(t, []string{
		"First listed takeaway for readers",
		"Second listed takeaway for readers",
	}, res.KeyPoints)
}

func TestSummarizeLeadImportanceSentencesWin(t *testing.T) {
	// 12 sentences; 3 early ones carry importance vocabulary, the rest
	// are deliberately bland. The vocabulary-bearing lead sentences must
	// appear in the summary, in original order.
	sentences := []string{
		"This research is important for the whole field of distributed systems",
		"The study shows significant results across every benchmark we ran",
		"Research demonstrates the important impact of caching on latency",
		"Bland filler sentence number four about nothing in particular",
		"Bland filler sentence number five about nothing in particular",
		"Bland filler sentence number six about nothing in particular",
		"Bland filler sentence number seven about nothing in particular",
		"Bland filler sentence number eight about nothing in particular",
		"Bland filler sentence number nine about nothing in particular",
		"Bland filler sentence number ten about nothing in particular",
		"Bland filler sentence number eleven about nothing in particular",
		"Bland filler sentence number twelve about nothing in particular",
	}
	content := strings.Join(sentences, ". ") + "."
	res := Summarize(content)

	first := strings.Index(res.Summary, "This research is important")
	second := strings.Index(res.Summary, "The study shows significant")
	third := strings.Index(res.Summary, "Research demonstrates the important")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
}

func TestSummaryEndsWithSinglePeriod(t *testing.T) {
	res := Summarize("A sentence that definitely survives filtering here. Another sentence that also survives filtering fine.")
	assert.True(t, strings.HasSuffix(res.Summary, "."))
	assert.False(t, strings.HasSuffix(res.Summary, ".."))
}
