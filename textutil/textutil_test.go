package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "hello   world\n\tagain", "hello world again"},
		{"keeps allowed punctuation", "Wait, really?! (yes); ok: fine.", "Wait, really?! (yes); ok: fine."},
		{"drops disallowed characters", `a#b$c%d "quoted" [x]`, "abcd quoted x"},
		{"trims edges", "  padded  ", "padded"},
		{"empty input", "", ""},
		{"keeps urdu letters", "خبر اچھی ہے", "خبر اچھی ہے"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanText(tc.in))
		})
	}
}

func TestContainsUrduScript(t *testing.T) {
	assert.False(t, ContainsUrduScript("Technology is advancing."))
	assert.True(t, ContainsUrduScript("ٹیکنالوجی ترقی کر رہی ہے۔"))
	// presentation forms count too
	assert.True(t, ContainsUrduScript("ﭐ"))
	assert.False(t, ContainsUrduScript(""))
}

func TestLooksLikeListItem(t *testing.T) {
	assert.True(t, LooksLikeListItem("- first point"))
	assert.True(t, LooksLikeListItem("• second point"))
	assert.True(t, LooksLikeListItem("3. third point"))
	assert.True(t, LooksLikeListItem("4) fourth point"))
	assert.False(t, LooksLikeListItem("not a list line"))
}

func TestStripListMarker(t *testing.T) {
	assert.Equal(t, "Point one", StripListMarker("- Point one"))
	assert.Equal(t, "Point two", StripListMarker("2) Point two"))
	assert.Equal(t, "Point three", StripListMarker("• Point three"))
}

func TestLatinRunCount(t *testing.T) {
	assert.Equal(t, 3, LatinRunCount("one two three"))
	assert.Equal(t, 0, LatinRunCount("۱۲۳ ۔"))
	assert.Equal(t, 1, LatinRunCount("خبر good خبر"))
}

func TestExtractUrduRuns(t *testing.T) {
	runs := ExtractUrduRuns("intro یہ خبر ہے and also دوسری بات end")
	assert.Equal(t, []string{"یہ خبر ہے", "دوسری بات"}, runs)

	assert.Empty(t, ExtractUrduRuns("no urdu here"))
}

func TestNormalizeTranslation(t *testing.T) {
	t.Run("keeps only urdu-bearing lines", func(t *testing.T) {
		in := "Sure, here is the Urdu version:\nیہ خبر اہم ہے۔\nLet me know if you need more."
		assert.Equal(t, "یہ خبر اہم ہے۔", NormalizeTranslation(in))
	})

	t.Run("strips translator preamble", func(t *testing.T) {
		assert.Equal(t, "یہ خبر ہے۔", NormalizeTranslation("ترجمہ: یہ خبر ہے۔"))
	})

	t.Run("fixes punctuation spacing", func(t *testing.T) {
		assert.Equal(t, "کیا یہ سچ ہے؟", NormalizeTranslation("کیا یہ سچ ہے ؟"))
	})

	t.Run("english-only text passes through normalized", func(t *testing.T) {
		assert.Equal(t, "plain text", NormalizeTranslation("plain   text"))
	})
}
