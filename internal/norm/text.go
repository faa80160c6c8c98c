package norm

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Transliterate converts ambiguous Unicode characters (Cyrillic, accented
// Latin, CJK) into their approximate ASCII equivalents. Source dumps mix
// scripts within single fields and the downstream vocabulary format expects
// ASCII-safe strings.
func Transliterate(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(unidecode.Unidecode(s))
}
