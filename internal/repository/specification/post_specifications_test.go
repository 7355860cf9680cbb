package specification

import (
	"testing"

	"project-finder-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestPostFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  PostFilter
		wantErr bool
	}{
		{"empty filter is valid", PostFilter{}, false},
		{"full filter is valid", PostFilter{
			Category:     strPtr("web"),
			SkillLevel:   strPtr("beginner"),
			Technologies: []string{"go"},
			EffortMin:    intPtr(1),
			EffortMax:    intPtr(10),
		}, false},
		{"skill level is case-insensitive", PostFilter{SkillLevel: strPtr("Advanced")}, false},
		{"blank category", PostFilter{Category: strPtr("  ")}, true},
		{"unknown skill level", PostFilter{SkillLevel: strPtr("guru")}, true},
		{"blank technology entry", PostFilter{Technologies: []string{"go", " "}}, true},
		{"effort min without max", PostFilter{EffortMin: intPtr(1)}, true},
		{"effort max without min", PostFilter{EffortMax: intPtr(10)}, true},
		{"inverted effort range", PostFilter{EffortMin: intPtr(10), EffortMax: intPtr(1)}, true},
		{"negative effort min", PostFilter{EffortMin: intPtr(-1), EffortMax: intPtr(5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostFilterSpecificationsExpandsSetClauses(t *testing.T) {
	filter := PostFilter{
		Category:     strPtr("web"),
		SkillLevel:   strPtr("Beginner"),
		Technologies: []string{"go", "react"},
		EffortMin:    intPtr(2),
		EffortMax:    intPtr(20),
	}

	specs, err := filter.Specifications()
	require.NoError(t, err)
	require.Len(t, specs, 4)

	assert.IsType(t, CategoryIs{}, specs[0])
	assert.Equal(t, "beginner", specs[1].(SkillLevelIs).Level)
	assert.Equal(t, []string{"go", "react"}, specs[2].(TechnologiesAny).Technologies)
	assert.Equal(t, EffortBetween{MinHours: 2, MaxHours: 20}, specs[3])
}

func TestPostFilterSpecificationsEmptyFilterYieldsNone(t *testing.T) {
	specs, err := PostFilter{}.Specifications()
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestPostFilterSpecificationsRejectsInvalidFilter(t *testing.T) {
	_, err := PostFilter{SkillLevel: strPtr("guru")}.Specifications()
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
