package canon

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9-]+`)

// asciiTransliterate strips combining marks after NFD decomposition,
// turning e.g. "Zürich" into "Zurich" before slugging.
var asciiTransliterate = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Slug derives an inventory-of-record slug from s: lowercase, non-ASCII
// transliterated to ASCII, runs of non [a-z0-9-] characters collapsed to a
// single "-", and the result trimmed of leading/trailing hyphens.
func Slug(s string) string {
	ascii, _, err := transform.String(asciiTransliterate, s)
	if err != nil {
		ascii = s
	}
	lower := strings.ToLower(ascii)
	collapsed := nonSlugRun.ReplaceAllString(lower, "-")
	return strings.Trim(collapsed, "-")
}
