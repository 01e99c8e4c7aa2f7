package matchmaking

import "strings"

// SkillMatchScore reports how much two skill lists overlap as a
// percentage of the smaller list: 100 means the smaller list is fully
// contained in the larger one. Comparison is case-insensitive and
// ignores surrounding whitespace. Either list being empty scores 0.
//
// The score is not consulted by FirstFit; it exists as the seam for a
// future skill-gated strategy.
func SkillMatchScore(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		if s = normalizeSkill(s); s != "" {
			set[s] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(b))
	common := 0
	for _, s := range b {
		s = normalizeSkill(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := set[s]; ok {
			common++
		}
	}

	smaller := len(set)
	if len(seen) < smaller {
		smaller = len(seen)
	}
	if smaller == 0 {
		return 0
	}
	return float64(common) / float64(smaller) * 100
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
