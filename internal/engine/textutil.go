package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// Preview flattens whitespace and truncates s for log lines.
func Preview(s string, limit int) string {
	return TruncateRunes(strings.Join(strings.Fields(s), " "), limit, "...")
}
