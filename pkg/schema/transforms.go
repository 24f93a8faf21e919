package schema

import (
	"math"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// TrimSpace trims surrounding whitespace of string values.
func TrimSpace(value any) any {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return value
}

// EscapeHTML replaces markup-significant characters with HTML entities.
func EscapeHTML(value any) any {
	if s, ok := value.(string); ok {
		return htmlEscaper.Replace(s)
	}
	return value
}

// ParseBool converts a value accepted by TagBool to a bool. Other values are
// returned unchanged.
func ParseBool(value any) any {
	if b, ok := boolValue(value); ok {
		return b
	}
	return value
}

func boolValue(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case float64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case int:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case string:
		switch v {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	}
	return false, false
}

// Truthy coerces any decoded JSON value to a bool: null, false, 0, NaN and
// the empty string are false, everything else is true.
func Truthy(value any) any {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	case string:
		return v != ""
	}
	return true
}
