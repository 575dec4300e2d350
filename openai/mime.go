package openai

import (
	"regexp"
	"strings"
)

var jsonMime = regexp.MustCompile(`(?i)^(application/json|[^;/ \t]+/[^;/ \t]+[+]json)[ \t]*(;.*)?$`)

// IsJSONMime reports whether mime is application/json, a +json structured
// syntax type, or application/json-patch+json. Parameters are allowed and
// matching is case-insensitive.
func IsJSONMime(mime string) bool {
	if mime == "" {
		return false
	}
	return jsonMime.MatchString(mime) || strings.EqualFold(mime, "application/json-patch+json")
}
