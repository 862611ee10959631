// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"
	"unicode"
)

// TextStyle is a naming convention applied to generated type names.
type TextStyle string

const (
	StyleDefault        TextStyle = "default"
	StyleCamelCase      TextStyle = "camelCase"
	StylePascalCase     TextStyle = "PascalCase"
	StyleScreamingSnake TextStyle = "SCREAMING_SNAKE_CASE"
)

// TextStyles returns the names of all supported styles.
func TextStyles() []string {
	return []string{string(StyleDefault), string(StyleCamelCase), string(StylePascalCase), string(StyleScreamingSnake)}
}

// ParseTextStyle validates a style name. The empty string is the default style.
func ParseTextStyle(s string) (TextStyle, error) {
	switch TextStyle(s) {
	case "", StyleDefault:
		return StyleDefault, nil
	case StyleCamelCase, StylePascalCase, StyleScreamingSnake:
		return TextStyle(s), nil
	}
	return "", fmt.Errorf("unknown text style %q (want one of %s)", s, strings.Join(TextStyles(), ", "))
}

// Apply converts name to the style. The default style returns name unchanged.
func (s TextStyle) Apply(name string) string {
	switch s {
	case StyleCamelCase:
		return ToCamelCase(name)
	case StylePascalCase:
		return ToPascalCase(name)
	case StyleScreamingSnake:
		return strings.ToUpper(ToSnakeCase(name))
	default:
		return name
	}
}

// splitWords splits s into words at separators and case boundaries:
// "userName" -> [user Name], "XMLHttp_request" -> [XML Http request].
// Digits stay attached to the word before them.
func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ToPascalCase converts a string to PascalCase for type name generation.
func ToPascalCase(s string) string {
	var sb strings.Builder
	for i, w := range splitWords(s) {
		if i > 0 && unicode.IsDigit([]rune(w)[0]) {
			sb.WriteByte('_')
		}
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	var sb strings.Builder
	for i, w := range splitWords(s) {
		switch {
		case i == 0:
			sb.WriteString(strings.ToLower(w))
		case unicode.IsDigit([]rune(w)[0]):
			sb.WriteString("_" + w)
		default:
			sb.WriteString(capitalize(w))
		}
	}
	return sb.String()
}

// ToSnakeCase converts a string to a valid snake_case identifier.
// It prefixes with underscore if the result starts with a digit.
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	result := strings.Join(words, "_")
	if result != "" && unicode.IsDigit([]rune(result)[0]) {
		result = "_" + result
	}
	return result
}

// ToIdentifier replaces every character that cannot appear in an
// identifier with an underscore.
func ToIdentifier(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_' || r == '$':
			sb.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}
