package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideThresholdAdaptation(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name          string
		query         string
		interestCount int
		want          float64
	}{
		{
			name:          "short query single interest stays at base",
			query:         strings.Repeat("a", 36),
			interestCount: 1,
			want:          0.75,
		},
		{
			name:          "no interests stays at base",
			query:         strings.Repeat("a", 10),
			interestCount: 0,
			want:          0.75,
		},
		{
			name:          "query at exactly the length threshold gets one boost",
			query:         strings.Repeat("a", 50),
			interestCount: 1,
			want:          0.80,
		},
		{
			name:          "long query with many interests nets out",
			query:         strings.Repeat("a", 120),
			interestCount: 5,
			want:          0.73, // 0.75 + 2*0.05 - 4*0.03
		},
		{
			name:          "interest count is capped before clamping",
			query:         strings.Repeat("a", 10),
			interestCount: 50,
			want:          0.65, // 0.75 - 4*0.03 = 0.63, clamped to min
		},
		{
			name:          "very long query clamps at max",
			query:         strings.Repeat("a", 500),
			interestCount: 1,
			want:          0.85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(cfg, tt.query, tt.interestCount, nil)
			assert.InDelta(t, tt.want, got.EffectiveThreshold, 1e-9)
			assert.Equal(t, ModeThreshold, got.Mode)
		})
	}
}

func TestDecideClampsToMinThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InterestDiversityBoost = 0.10

	got := Decide(cfg, "short", 5, nil)
	assert.InDelta(t, cfg.MinThreshold, got.EffectiveThreshold, 1e-9)
}

func TestDecideMultibyteQueryCountsRunes(t *testing.T) {
	cfg := DefaultConfig()

	// 50 runes but far more bytes; still exactly one boost.
	query := strings.Repeat("é", 50)
	got := Decide(cfg, query, 1, nil)
	assert.InDelta(t, 0.80, got.EffectiveThreshold, 1e-9)
}

func TestDecideFixedCountClamping(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"below minimum clamps up", 1, 5},
		{"within range passes through", 12, 12},
		{"above maximum clamps down", 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(cfg, "query", 0, &tt.count)
			assert.Equal(t, ModeFixed, got.Mode)
			assert.Equal(t, tt.want, got.ResultCount)
		})
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	query := strings.Repeat("build a rest api in go ", 6)

	first := Decide(cfg, query, 3, nil)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Decide(cfg, query, 3, nil))
	}
}
