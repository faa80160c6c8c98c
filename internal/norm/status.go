package norm

import (
	"fmt"
	"strings"
)

// Status interprets a vocabulary-specific status value as an active flag.
// Recognised strings: active, inactive, withdrawn, deprecated, defunct.
// Booleans pass through. An unknown value defaults to active with a
// warning; an absent value defaults to active silently. Status never
// fails: absence of status must not block conversion.
func Status(raw any) (bool, string) {
	switch v := raw.(type) {
	case nil:
		return true, ""
	case bool:
		return v, ""
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "active":
			return true, ""
		case "inactive", "withdrawn", "deprecated", "defunct":
			return false, ""
		default:
			return true, fmt.Sprintf("unrecognised status %q, record kept active", v)
		}
	default:
		return true, fmt.Sprintf("unrecognised status value %v, record kept active", v)
	}
}
