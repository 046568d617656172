// Package translator holds the dictionary fallback translator and the
// translation quality validator. Both are pure and dependency-free so
// they stay usable when the hosted model is down.
package translator

import "strings"

// tokenPunct is stripped from each token before dictionary lookup.
const tokenPunct = ".,!?;:()\"'،۔"

// dictionary is a fixed English→Urdu word mapping. Intentionally crude:
// no grammar, no reordering, no multi-word phrases. Unknown words pass
// through untouched.
var dictionary = map[string]string{
	"the":        "یہ",
	"is":         "ہے",
	"are":        "ہیں",
	"was":        "تھا",
	"were":       "تھے",
	"be":         "ہونا",
	"been":       "رہا",
	"am":         "ہوں",
	"a":          "ایک",
	"an":         "ایک",
	"and":        "اور",
	"or":         "یا",
	"but":        "لیکن",
	"not":        "نہیں",
	"no":         "نہیں",
	"yes":        "ہاں",
	"of":         "کا",
	"in":         "میں",
	"on":         "پر",
	"at":         "پر",
	"to":         "کو",
	"from":       "سے",
	"with":       "کے ساتھ",
	"without":    "کے بغیر",
	"for":        "کے لیے",
	"by":         "کی طرف سے",
	"about":      "کے بارے میں",
	"this":       "یہ",
	"that":       "وہ",
	"these":      "یہ",
	"those":      "وہ",
	"it":         "یہ",
	"he":         "وہ",
	"she":        "وہ",
	"they":       "وہ",
	"we":         "ہم",
	"you":        "آپ",
	"i":          "میں",
	"my":         "میرا",
	"your":       "آپ کا",
	"our":        "ہمارا",
	"their":      "ان کا",
	"his":        "اس کا",
	"her":        "اس کی",
	"who":        "کون",
	"what":       "کیا",
	"when":       "کب",
	"where":      "کہاں",
	"why":        "کیوں",
	"how":        "کیسے",
	"which":      "کون سا",
	"all":        "تمام",
	"some":       "کچھ",
	"many":       "بہت سے",
	"much":       "بہت",
	"more":       "زیادہ",
	"most":       "سب سے زیادہ",
	"few":        "چند",
	"other":      "دوسرے",
	"new":        "نیا",
	"old":        "پرانا",
	"good":       "اچھا",
	"bad":        "برا",
	"big":        "بڑا",
	"small":      "چھوٹا",
	"great":      "عظیم",
	"high":       "اونچا",
	"low":        "کم",
	"long":       "لمبا",
	"short":      "مختصر",
	"first":      "پہلا",
	"last":       "آخری",
	"next":       "اگلا",
	"now":        "اب",
	"today":      "آج",
	"yesterday":  "کل",
	"tomorrow":   "کل",
	"year":       "سال",
	"month":      "مہینہ",
	"week":       "ہفتہ",
	"day":        "دن",
	"time":       "وقت",
	"world":      "دنیا",
	"country":    "ملک",
	"city":       "شہر",
	"people":     "لوگ",
	"person":     "شخص",
	"man":        "آدمی",
	"woman":      "عورت",
	"child":      "بچہ",
	"life":       "زندگی",
	"work":       "کام",
	"home":       "گھر",
	"school":     "اسکول",
	"company":    "کمپنی",
	"government": "حکومت",
	"market":     "بازار",
	"money":      "پیسہ",
	"price":      "قیمت",
	"business":   "کاروبار",
	"technology": "ٹیکنالوجی",
	"computer":   "کمپیوٹر",
	"internet":   "انٹرنیٹ",
	"software":   "سافٹ ویئر",
	"news":       "خبریں",
	"story":      "کہانی",
	"book":       "کتاب",
	"word":       "لفظ",
	"language":   "زبان",
	"water":      "پانی",
	"food":       "کھانا",
	"health":     "صحت",
	"science":    "سائنس",
	"system":     "نظام",
	"problem":    "مسئلہ",
	"question":   "سوال",
	"answer":     "جواب",
	"idea":       "خیال",
	"change":     "تبدیلی",
	"part":       "حصہ",
	"place":      "جگہ",
	"number":     "نمبر",
	"group":      "گروہ",
	"way":        "طریقہ",
	"end":        "اختتام",
	"start":      "شروع",
	"have":       "رکھنا",
	"has":        "رکھتا ہے",
	"had":        "تھا",
	"do":         "کرنا",
	"does":       "کرتا ہے",
	"did":        "کیا",
	"make":       "بنانا",
	"made":       "بنایا",
	"get":        "حاصل کرنا",
	"go":         "جانا",
	"come":       "آنا",
	"see":        "دیکھنا",
	"know":       "جاننا",
	"think":      "سوچنا",
	"say":        "کہنا",
	"said":       "کہا",
	"tell":       "بتانا",
	"give":       "دینا",
	"take":       "لینا",
	"find":       "تلاش کرنا",
	"use":        "استعمال کرنا",
	"help":       "مدد",
	"want":       "چاہنا",
	"need":       "ضرورت",
	"read":       "پڑھنا",
	"write":      "لکھنا",
	"learn":      "سیکھنا",
	"grow":       "بڑھنا",
	"very":       "بہت",
	"also":       "بھی",
	"only":       "صرف",
	"here":       "یہاں",
	"there":      "وہاں",
	"after":      "کے بعد",
	"before":     "سے پہلے",
	"because":    "کیونکہ",
	"between":    "کے درمیان",
	"against":    "کے خلاف",
}

// DictionarySize is exposed for diagnostics.
func DictionarySize() int { return len(dictionary) }

// TranslateStatic renders a word-for-word best-effort Urdu translation.
// Tokens found in the dictionary are replaced; unknown tokens keep their
// original form, source script included. Never fails.
func TranslateStatic(text string) string {
	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		key := strings.Trim(strings.ToLower(tok), tokenPunct)
		if urdu, ok := dictionary[key]; ok && key != "" {
			out = append(out, urdu)
			continue
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}
