package utils

import "strings"

// CollapseSpaces trims the edges of s and squeezes every internal run of
// whitespace down to a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}

// DigitsOnly strips everything that is not an ASCII digit. Formatting such as
// "(21) 91234-5678" or "123.456.789-00" comes out as bare digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
