package recommend

import (
	"testing"

	"project-finder-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadataValidResponse(t *testing.T) {
	raw := `{"category": "web", "skill_level": "beginner", "estimated_effort_hours": 12, "technologies": ["Go", "PostgreSQL"]}`

	metadata, err := ParseMetadata(raw)
	require.NoError(t, err)

	assert.Equal(t, "web", metadata.Category)
	assert.Equal(t, "beginner", metadata.SkillLevel)
	assert.Equal(t, 12, metadata.EstimatedEffortHours)
	assert.Equal(t, []string{"go", "postgresql"}, metadata.Technologies)
}

func TestParseMetadataUnwrapsProseAndFences(t *testing.T) {
	raw := "Sure! Here is the classification:\n```json\n" +
		`{"category": "CLI", "skill_level": "Advanced", "estimated_effort_hours": 40, "technologies": []}` +
		"\n```"

	metadata, err := ParseMetadata(raw)
	require.NoError(t, err)

	assert.Equal(t, "cli", metadata.Category)
	assert.Equal(t, "advanced", metadata.SkillLevel)
}

func TestParseMetadataRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "I cannot classify this post."},
		{"missing category", `{"category": "", "skill_level": "beginner", "estimated_effort_hours": 1, "technologies": []}`},
		{"unknown skill level", `{"category": "web", "skill_level": "wizard", "estimated_effort_hours": 1, "technologies": []}`},
		{"negative effort", `{"category": "web", "skill_level": "beginner", "estimated_effort_hours": -3, "technologies": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetadata(tt.raw)
			assert.True(t, apperrors.IsKind(err, apperrors.KindTransformation))
		})
	}
}

func TestParseMetadataDropsBlankTechnologies(t *testing.T) {
	raw := `{"category": "web", "skill_level": "intermediate", "estimated_effort_hours": 8, "technologies": ["React", "  ", ""]}`

	metadata, err := ParseMetadata(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"react"}, metadata.Technologies)
}
