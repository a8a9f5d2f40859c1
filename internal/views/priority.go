package views

import (
	"strings"
)

// Canonical priority ranks, most urgent first. Anything outside the
// table ranks after medium.
var priorityRank = map[string]int{
	"superstat": 0,
	"stat":      1,
	"top":       2,
	"high":      3,
	"medium":    4,
}

const priorityRankOther = 5

// NormalizePriority lowercases and strips non-letters, so "STAT!" and
// "stat" rank the same.
func NormalizePriority(p string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(p) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func PriorityRank(p string) int {
	if rank, ok := priorityRank[NormalizePriority(p)]; ok {
		return rank
	}
	return priorityRankOther
}

// comparePriority orders by canonical rank; strings outside the
// canonical set tie on rank and fall back to the raw string so their
// relative order is deterministic.
func comparePriority(a, b *string) int {
	ra, rb := PriorityRank(strVal(a)), PriorityRank(strVal(b))
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if ra == priorityRankOther {
		return strings.Compare(strVal(a), strVal(b))
	}
	return 0
}
