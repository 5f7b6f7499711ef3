package engine

import "github.com/agnivade/levenshtein"

// Similarity returns a score in [0,1] for two normalized phrases using
// Levenshtein distance: 1 - distance/max(len(a), len(b)). The score is
// symmetric, identical strings score 1.0 and disjoint strings score
// near 0.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
