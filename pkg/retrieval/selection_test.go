package retrieval

import (
	"testing"
	"time"

	"project-finder-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func candidate(id string, score float64, createdAt time.Time) entity.Candidate {
	return entity.Candidate{
		Post:  &entity.Post{Id: id, CreatedAt: createdAt},
		Score: score,
	}
}

func ids(candidates []entity.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Post.Id
	}
	return out
}

func TestSelectThresholdModeKeepsScoresAboveCutoff(t *testing.T) {
	now := time.Now()
	candidates := []entity.Candidate{
		candidate("a", 0.90, now),
		candidate("b", 0.85, now),
		candidate("c", 0.80, now),
		candidate("d", 0.70, now),
		candidate("e", 0.60, now),
	}

	got := Select(candidates, Decision{Mode: ModeThreshold, EffectiveThreshold: 0.75})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSelectThresholdModeBoundaryIsInclusive(t *testing.T) {
	now := time.Now()
	candidates := []entity.Candidate{
		candidate("a", 0.75, now),
		candidate("b", 0.7499, now),
	}

	got := Select(candidates, Decision{Mode: ModeThreshold, EffectiveThreshold: 0.75})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSelectThresholdModeEmptyResultIsValid(t *testing.T) {
	now := time.Now()
	candidates := []entity.Candidate{
		candidate("a", 0.50, now),
	}

	got := Select(candidates, Decision{Mode: ModeThreshold, EffectiveThreshold: 0.75})
	assert.Empty(t, got)
}

func TestSelectFixedModeTruncates(t *testing.T) {
	now := time.Now()
	candidates := []entity.Candidate{
		candidate("a", 0.90, now),
		candidate("b", 0.80, now),
		candidate("c", 0.10, now),
	}

	got := Select(candidates, Decision{Mode: ModeFixed, ResultCount: 2})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestSelectFixedModeReturnsAllWhenShort(t *testing.T) {
	now := time.Now()
	candidates := []entity.Candidate{
		candidate("a", 0.90, now),
	}

	got := Select(candidates, Decision{Mode: ModeFixed, ResultCount: 10})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSelectReordersUnsortedInput(t *testing.T) {
	now := time.Now()
	candidates := []entity.Candidate{
		candidate("low", 0.70, now),
		candidate("high", 0.95, now),
		candidate("mid", 0.80, now),
	}

	got := Select(candidates, Decision{Mode: ModeThreshold, EffectiveThreshold: 0.0})
	assert.Equal(t, []string{"high", "mid", "low"}, ids(got))
}

func TestSelectBreaksScoreTiesByRecency(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	candidates := []entity.Candidate{
		candidate("older", 0.80, older),
		candidate("newer", 0.80, newer),
	}

	got := Select(candidates, Decision{Mode: ModeThreshold, EffectiveThreshold: 0.75})
	assert.Equal(t, []string{"newer", "older"}, ids(got))
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	candidates := []entity.Candidate{
		candidate("b", 0.70, now),
		candidate("a", 0.90, now),
	}

	Select(candidates, Decision{Mode: ModeThreshold, EffectiveThreshold: 0.0})
	assert.Equal(t, []string{"b", "a"}, ids(candidates))
}
