package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// leadingArticles are dropped by the loosest comparison tier.
var leadingArticles = []string{"il", "lo", "la", "i", "gli", "le", "un", "uno", "una"}

// normalize lowercases and trims s.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FoldAccents decomposes s and strips combining marks, so "città" becomes
// "citta".
func FoldAccents(s string) string {
	// Chained transformers hold state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// isTile reports whether r is offered as a letter-picker tile.
func isTile(r rune) bool {
	return unicode.IsLetter(r)
}

// tileSpelling keeps only the runes of w that appear as tiles, so "c'è"
// spells as "cè".
func tileSpelling(w string) string {
	return strings.Map(func(r rune) rune {
		if isTile(r) {
			return r
		}
		return -1
	}, w)
}

// canonical is the accent-folded, whitespace-collapsed, article-free form.
func canonical(s string) string {
	s = strings.Join(strings.Fields(FoldAccents(normalize(s))), " ")
	for _, a := range leadingArticles {
		if rest, ok := strings.CutPrefix(s, a+" "); ok {
			return rest
		}
	}
	return s
}

// textMatches compares a typed answer against any of the accepted strings.
// Exact normalized equality is tried first, then the canonical form.
func textMatches(answer string, accepted ...string) bool {
	got := normalize(answer)
	if got == "" {
		return false
	}
	for _, want := range accepted {
		if want == "" {
			continue
		}
		if got == normalize(want) {
			return true
		}
	}
	folded := canonical(answer)
	for _, want := range accepted {
		if want == "" {
			continue
		}
		if folded == canonical(want) {
			return true
		}
	}
	return false
}

// splitPunct separates leading and trailing non-letter runes from a word.
func splitPunct(w string) (lead, core, trail string) {
	isWordRune := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	start := strings.IndexFunc(w, isWordRune)
	if start < 0 {
		return w, "", ""
	}
	end := strings.LastIndexFunc(w, isWordRune)
	// LastIndexFunc returns the byte offset of the rune's start.
	_, size := utf8.DecodeRuneInString(w[end:])
	end += size
	return w[:start], w[start:end], w[end:]
}
