package specification

import (
	"encoding/json"
	"strings"

	"project-finder-be/internal/pkg/apperrors"

	"gorm.io/gorm"
)

// Post metadata filtering is a closed set of clause variants (exact match,
// set membership, range) rather than an open-ended map, so a filter can be
// validated before any query is issued. All clauses reference the posts
// table explicitly because the similarity search joins posts with
// post_embeddings.

// CategoryIs is an exact-match clause on the extracted category.
type CategoryIs struct {
	Category string
}

func (s CategoryIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("posts.category = ?", s.Category)
}

// SkillLevelIs is an exact-match clause on the extracted skill level.
type SkillLevelIs struct {
	Level string
}

func (s SkillLevelIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("posts.skill_level = ?", s.Level)
}

// TechnologiesAny is a set-membership clause: the post's technology list
// must contain at least one of the given technologies.
type TechnologiesAny struct {
	Technologies []string
}

func (s TechnologiesAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Technologies) == 0 {
		return db
	}
	clauses := make([]string, len(s.Technologies))
	args := make([]interface{}, len(s.Technologies))
	for i, tech := range s.Technologies {
		b, _ := json.Marshal([]string{tech})
		clauses[i] = "posts.technologies @> ?"
		args[i] = string(b)
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// EffortBetween is a range clause on estimated effort hours (inclusive).
type EffortBetween struct {
	MinHours int
	MaxHours int
}

func (s EffortBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("posts.estimated_effort_hours BETWEEN ? AND ?", s.MinHours, s.MaxHours)
}

// PostFilter is the conjunction of metadata constraints a caller may attach
// to a similarity search. Nil/empty fields are unconstrained.
type PostFilter struct {
	Category     *string
	SkillLevel   *string
	Technologies []string
	EffortMin    *int
	EffortMax    *int
}

var knownSkillLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// Validate rejects a malformed filter before it reaches the store.
func (f PostFilter) Validate() error {
	if f.Category != nil && strings.TrimSpace(*f.Category) == "" {
		return apperrors.Validation("filter category must not be blank")
	}
	if f.SkillLevel != nil && !knownSkillLevels[strings.ToLower(*f.SkillLevel)] {
		return apperrors.Validation("unknown skill level %q", *f.SkillLevel)
	}
	for _, tech := range f.Technologies {
		if strings.TrimSpace(tech) == "" {
			return apperrors.Validation("filter technologies must not contain blank entries")
		}
	}
	if (f.EffortMin == nil) != (f.EffortMax == nil) {
		return apperrors.Validation("effort range requires both min and max hours")
	}
	if f.EffortMin != nil {
		if *f.EffortMin < 0 || *f.EffortMax < *f.EffortMin {
			return apperrors.Validation("effort range [%d,%d] is not a valid range", *f.EffortMin, *f.EffortMax)
		}
	}
	return nil
}

// Specifications validates the filter and expands it into clause variants.
func (f PostFilter) Specifications() ([]Specification, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var specs []Specification
	if f.Category != nil {
		specs = append(specs, CategoryIs{Category: *f.Category})
	}
	if f.SkillLevel != nil {
		specs = append(specs, SkillLevelIs{Level: strings.ToLower(*f.SkillLevel)})
	}
	if len(f.Technologies) > 0 {
		specs = append(specs, TechnologiesAny{Technologies: f.Technologies})
	}
	if f.EffortMin != nil && f.EffortMax != nil {
		specs = append(specs, EffortBetween{MinHours: *f.EffortMin, MaxHours: *f.EffortMax})
	}
	return specs, nil
}
