// Package suggest finds known names close to a misspelled one.
package suggest

import (
	"strings"

	"github.com/agext/levenshtein"
)

// MaxDistance is the largest edit distance still considered a match.
const MaxDistance = 3

// MaxShown limits the number of matches worth displaying.
const MaxShown = 20

// Matches returns candidates that contain name or are within
// MaxDistance edits from it, in candidates order.
func Matches(name string, candidates []string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	var res []string
	for _, v := range candidates {
		if strings.Contains(v, name) ||
			levenshtein.Distance(name, v, nil) <= MaxDistance {
			res = append(res, v)
		}
	}
	return res
}

// Format renders matches for a user message.
func Format(matches []string) string {
	switch {
	case len(matches) == 0:
		return "no potential matches"
	case len(matches) > MaxShown:
		return "too many potential matches to display"
	default:
		return "potential matches: " + strings.Join(matches, ", ")
	}
}
