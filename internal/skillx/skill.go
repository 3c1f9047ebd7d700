// Package skillx normalizes free-text skill lists. Registration and profile
// forms accept skills as a single comma-separated string; the backend stores
// them as an ordered list. Split and Join are the two sides of that encoding.
package skillx

import "strings"

// Split turns a comma-separated skill string into an ordered list.
// Each entry is trimmed of surrounding whitespace; empty entries are
// discarded. Split("a, b ,c,") yields ["a" "b" "c"].
func Split(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Join flattens a skill list back into the comma-separated display form
// used by editable profile fields.
func Join(skills []string) string {
	return strings.Join(skills, ", ")
}
