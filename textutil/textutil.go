package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// urduRanges are the Unicode blocks used for Arabic-script Urdu text,
// including the presentation-form blocks some models emit.
var urduRanges = []struct{ lo, hi rune }{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0x08A0, 0x08FF},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
}

// IsUrduRune reports whether r falls in one of the Urdu blocks.
func IsUrduRune(r rune) bool {
	for _, rg := range urduRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// ContainsUrduScript reports whether s has at least one Urdu-range rune.
func ContainsUrduScript(s string) bool {
	for _, r := range s {
		if IsUrduRune(r) {
			return true
		}
	}
	return false
}

// allowedPunct is the punctuation kept by CleanText.
const allowedPunct = ".,!?;:()"

// CleanText normalizes raw scraped text: collapses whitespace runs to a
// single space, drops characters outside letters/digits/whitespace and a
// small punctuation allow-list, and trims the edges. Pure, never fails.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case strings.ContainsRune(allowedPunct, r):
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// CountWords counts whitespace-separated tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

var (
	bulletRe   = regexp.MustCompile(`^[•·\-*]\s*`)
	numberedRe = regexp.MustCompile(`^\d+[.)]\s*`)
	latinRunRe = regexp.MustCompile(`[A-Za-z]+`)
	digitRunRe = regexp.MustCompile(`\d+`)
)

// LooksLikeListItem reports whether a trimmed line starts with a bullet
// glyph or a numbered-list marker.
func LooksLikeListItem(line string) bool {
	return bulletRe.MatchString(line) || numberedRe.MatchString(line)
}

// StripListMarker removes a leading bullet or number marker from line.
func StripListMarker(line string) string {
	line = bulletRe.ReplaceAllString(line, "")
	line = numberedRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// LatinRunCount counts maximal runs of Latin letters in s. Used to judge
// how much untranslated English is left inside a translation.
func LatinRunCount(s string) int {
	return len(latinRunRe.FindAllString(s, -1))
}

// DigitGroupCount counts maximal digit runs in s.
func DigitGroupCount(s string) int {
	return len(digitRunRe.FindAllString(s, -1))
}

// ExtractUrduRuns returns all maximal substrings of s made of Urdu-range
// runes plus interior spaces, in order of appearance.
func ExtractUrduRuns(s string) []string {
	var runs []string
	var cur strings.Builder
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			runs = append(runs, t)
		}
		cur.Reset()
	}
	for _, r := range s {
		if IsUrduRune(r) || (cur.Len() > 0 && (r == ' ' || r == '‌' || r == '‍')) {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return runs
}

// translator preambles the model tends to prepend to its answer.
var preambleRe = regexp.MustCompile(`(?i)^\s*((here is|here's)[^:]*:|urdu translation\s*:|translation\s*:|ترجمہ\s*:|اردو ترجمہ\s*:)\s*`)

// urduPunct are the sentence marks that take no space before themselves.
var urduPunctSpacingRe = regexp.MustCompile(`\s+([۔؟!])`)

// NormalizeTranslation applies the post-processing contract for every
// model-sourced translation before validation:
//  1. keep only lines that carry Urdu-range runes when any exist, so
//     pure-English commentary the model added is discarded;
//  2. otherwise strip known translator preambles;
//  3. collapse whitespace and fix spacing before ۔ ؟ !.
func NormalizeTranslation(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	var urduLines []string
	for _, line := range lines {
		if ContainsUrduScript(line) {
			urduLines = append(urduLines, strings.TrimSpace(line))
		}
	}
	if len(urduLines) > 0 {
		s = strings.Join(urduLines, " ")
	}

	s = preambleRe.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	s = urduPunctSpacingRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
