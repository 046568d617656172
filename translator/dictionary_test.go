package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateStaticKnownTokens(t *testing.T) {
	// "the" and "is" map per the table; "data" and "important" are not
	// in the dictionary and pass through unchanged.
	got := TranslateStatic("the data is important")
	assert.Equal(t, "یہ data ہے important", got)
}

func TestTranslateStaticStripsPunctuationForLookup(t *testing.T) {
	assert.Equal(t, "یہ دنیا ہے اچھا", TranslateStatic("The world, is good!"))
}

func TestTranslateStaticKeepsOriginalCasingForUnknowns(t *testing.T) {
	assert.Equal(t, "Kubernetes ہے اچھا", TranslateStatic("Kubernetes is good"))
}

func TestTranslateStaticEmptyInput(t *testing.T) {
	assert.Equal(t, "", TranslateStatic(""))
}

func TestTranslateStaticNeverReturnsInputVerbatimWhenMappable(t *testing.T) {
	in := "Technology is advancing."
	out := TranslateStatic(in)
	assert.NotEqual(t, in, out)
}

func TestDictionarySize(t *testing.T) {
	assert.GreaterOrEqual(t, DictionarySize(), 140)
}
