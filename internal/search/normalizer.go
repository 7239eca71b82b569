package search

import "strings"

// Turkish diacritics are folded to their ASCII neighbours so that a query
// typed without them still matches the stored text. ToLower runs first;
// it already maps the dotted capital İ (U+0130) to plain i.
var turkishFolder = strings.NewReplacer(
	"ç", "c",
	"ğ", "g",
	"ı", "i",
	"ö", "o",
	"ş", "s",
	"ü", "u",
)

// Normalize canonicalizes text for comparison: lower-case, fold Turkish
// diacritics, trim surrounding whitespace. It must be applied to both sides
// of every comparison; normalizing only one side is a bug.
func Normalize(text string) string {
	return strings.TrimSpace(turkishFolder.Replace(strings.ToLower(text)))
}
