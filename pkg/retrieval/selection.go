package retrieval

import (
	"sort"
	"time"

	"project-finder-be/internal/entity"
)

// Select applies a threshold decision to scored candidates and returns the
// final ordered result set.
//
// The vector store contract delivers candidates sorted by descending score,
// but upstream ordering is never trusted silently: Select always re-sorts,
// breaking score ties by post recency (more recent first) so repeated
// identical queries produce identical orderings.
func Select(candidates []entity.Candidate, decision Decision) []entity.Candidate {
	sorted := make([]entity.Candidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})

	if decision.Mode == ModeFixed {
		n := decision.ResultCount
		if n > len(sorted) {
			n = len(sorted)
		}
		if n < 0 {
			n = 0
		}
		return sorted[:n]
	}

	// Threshold mode: prefix of candidates at or above the cutoff. An empty
	// prefix is a valid result signaling "broaden your query or interests".
	cut := 0
	for cut < len(sorted) && sorted[cut].Score >= decision.EffectiveThreshold {
		cut++
	}
	return sorted[:cut]
}

func createdAt(c entity.Candidate) time.Time {
	if c.Post != nil {
		return c.Post.CreatedAt
	}
	return time.Time{}
}
