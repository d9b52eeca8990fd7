package utils

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanUsername lowercases the input, strips diacritics, replaces spaces with
// underscores and drops any remaining character outside [a-z0-9_].
func CleanUsername(input string) string {
	decomposed := norm.NFD.String(input)

	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining diacritical mark
		}
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ExtractFirstNames returns everything before the last word for names with
// more than two parts ("Karen Lean Kay Cabarrubias" -> "Karen Lean Kay"),
// otherwise just the first word.
func ExtractFirstNames(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return ""
	}
	if len(parts) > 2 {
		return strings.Join(parts[:len(parts)-1], " ")
	}
	return parts[0]
}

// ExtractLastName returns the final word of the full name.
func ExtractLastName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// GenerateUniqueUsername cleans the base name and appends an incrementing
// numeric suffix until exists reports the candidate as free.
func GenerateUniqueUsername(base string, exists func(string) bool) string {
	username := CleanUsername(base)
	candidate := username
	for counter := 1; exists(candidate); counter++ {
		candidate = username + strconv.Itoa(counter)
	}
	return candidate
}
