package retrieval

import (
	"unicode/utf8"
)

// Mode selects between the two result policies.
type Mode string

const (
	// ModeFixed returns exactly ResultCount items (up to availability),
	// regardless of absolute score.
	ModeFixed Mode = "fixed"
	// ModeThreshold returns every candidate scoring at or above the
	// effective threshold. An empty result is valid, not an error.
	ModeThreshold Mode = "threshold"
)

// Config carries the retrieval tuning constants. It is passed explicitly so
// the engine stays a pure function and tests can vary the bounds freely.
type Config struct {
	BaseThreshold float64
	MinThreshold  float64
	MaxThreshold  float64

	// QueryLengthThreshold is the rune count above which a query is
	// considered detailed; SpecificityBoost is added once per full multiple
	// contained in the query length.
	QueryLengthThreshold int
	SpecificityBoost     float64

	// Interests beyond the first widen the pool: InterestDiversityBoost is
	// subtracted per extra category, counting at most MaxInterestCategories.
	MaxInterestCategories  int
	InterestDiversityBoost float64

	DefaultResultCount int
	MinResultCount     int
	MaxResultCount     int

	// FetchTopK bounds how many candidates are pulled from the vector store
	// before selection (fetch wide, filter later).
	FetchTopK int
}

// DefaultConfig mirrors the tuning the recommendation index was built with.
func DefaultConfig() Config {
	return Config{
		BaseThreshold:          0.75,
		MinThreshold:           0.65,
		MaxThreshold:           0.85,
		QueryLengthThreshold:   50,
		SpecificityBoost:       0.05,
		MaxInterestCategories:  5,
		InterestDiversityBoost: 0.03,
		DefaultResultCount:     10,
		MinResultCount:         5,
		MaxResultCount:         20,
		FetchTopK:              50,
	}
}

// Decision is the per-query retrieval policy. ResultCount is meaningful only
// in fixed mode.
type Decision struct {
	EffectiveThreshold float64
	Mode               Mode
	ResultCount        int
}

// Decide computes the effective similarity threshold and result mode for a
// query. Pure and deterministic: identical inputs always yield an identical
// decision.
//
// Specificity boosts are additive, one per full multiple of
// QueryLengthThreshold contained in the query's rune count: a 36-rune query
// gets none, a 120-rune query (threshold 50) gets two. Diversity reductions
// apply per interest category beyond the first, counting at most
// MaxInterestCategories. The result is clamped to [MinThreshold, MaxThreshold].
func Decide(cfg Config, query string, interestCount int, fixedCount *int) Decision {
	threshold := cfg.BaseThreshold

	if cfg.QueryLengthThreshold > 0 {
		boosts := utf8.RuneCountInString(query) / cfg.QueryLengthThreshold
		threshold += float64(boosts) * cfg.SpecificityBoost
	}

	categories := interestCount
	if categories > cfg.MaxInterestCategories {
		categories = cfg.MaxInterestCategories
	}
	if categories > 1 {
		threshold -= float64(categories-1) * cfg.InterestDiversityBoost
	}

	if threshold < cfg.MinThreshold {
		threshold = cfg.MinThreshold
	}
	if threshold > cfg.MaxThreshold {
		threshold = cfg.MaxThreshold
	}

	if fixedCount != nil {
		count := *fixedCount
		if count < cfg.MinResultCount {
			count = cfg.MinResultCount
		}
		if count > cfg.MaxResultCount {
			count = cfg.MaxResultCount
		}
		return Decision{
			EffectiveThreshold: threshold,
			Mode:               ModeFixed,
			ResultCount:        count,
		}
	}

	return Decision{
		EffectiveThreshold: threshold,
		Mode:               ModeThreshold,
	}
}
