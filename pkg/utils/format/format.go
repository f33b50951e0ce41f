package format

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Grouping patterns for humanize.FormatInteger, keyed by html lang.
var integerFormats = map[string]string{
	"fr": "# ###,",
	"en": "#,###.",
}

// Integer formats n with the digit grouping of lang ("1 240" in French,
// "1,240" in English). Unknown languages use the English pattern.
func Integer(lang string, n int) string {
	f, ok := integerFormats[lang]
	if !ok {
		f = integerFormats["en"]
	}
	return humanize.FormatInteger(f, n)
}

// Percent formats a 0..1 ratio as a whole percentage. French separates the
// sign with a space.
func Percent(lang string, ratio float64) string {
	n := int(math.Round(ratio * 100))
	if lang == "fr" {
		return Integer(lang, n) + " %"
	}
	return Integer(lang, n) + "%"
}
