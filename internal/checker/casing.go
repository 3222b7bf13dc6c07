package checker

import "strings"

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) &&
		strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// recase shapes a lowercase suggestion after the casing of the original
// token: Title and ALL-CAPS forms are preserved, anything else stays
// lowercase.
func recase(original, suggestion string) string {
	switch {
	case isTitle(original):
		return title(suggestion)
	case isUpper(original):
		return strings.ToUpper(suggestion)
	default:
		return suggestion
	}
}
