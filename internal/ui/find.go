package ui

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// findPanel returns the index of the title that best matches query.
// Exact, prefix and substring matches (case-insensitive) win in that
// order; otherwise the closest title or title word by edit distance is
// accepted when it is within half the query length.
func findPanel(titles []string, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}

	lower := make([]string, len(titles))
	for i, t := range titles {
		lower[i] = strings.ToLower(t)
	}

	for _, match := range []func(string) bool{
		func(t string) bool { return t == q },
		func(t string) bool { return strings.HasPrefix(t, q) },
		func(t string) bool { return strings.Contains(t, q) },
	} {
		for i, t := range lower {
			if match(t) {
				return i, true
			}
		}
	}

	best, bestDist := -1, 0
	for i, t := range lower {
		d := distance(q, t)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > max(1, len([]rune(q))/2) {
		return 0, false
	}
	return best, true
}

// distance is the smallest edit distance between q and the title or any of its words
func distance(q, title string) int {
	d := levenshtein.ComputeDistance(q, title)
	for _, w := range strings.Fields(title) {
		d = min(d, levenshtein.ComputeDistance(q, w))
	}
	return d
}
