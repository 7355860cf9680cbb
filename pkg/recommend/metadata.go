package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/pkg/llm"
)

const metadataTimeout = 30 * time.Second

const metadataSystemPrompt = `You classify programming community posts.
Respond with a single JSON object and nothing else, using exactly these keys:
{"category": string, "skill_level": "beginner"|"intermediate"|"advanced", "estimated_effort_hours": integer, "technologies": [string]}`

// Extractor classifies posts into filterable metadata through a model
// backend.
type Extractor struct {
	llm llm.LLMProvider
}

func NewExtractor(provider llm.LLMProvider) *Extractor {
	return &Extractor{llm: provider}
}

// BuildMetadataPrompt assembles the classification prompt for one post.
func BuildMetadataPrompt(post *entity.Post) string {
	var b strings.Builder
	b.WriteString("Classify the following post.\n\nTitle: ")
	b.WriteString(post.Title)
	b.WriteString("\n\nContent:\n")
	b.WriteString(truncateRunes(post.Content, maxPostExcerptRunes))
	return b.String()
}

// ExtractMetadata classifies one post. Transport failures surface as
// unavailable; a malformed or out-of-schema response is a transformation
// failure.
func (e *Extractor) ExtractMetadata(ctx context.Context, post *entity.Post) (*entity.PostMetadata, error) {
	if post == nil {
		return nil, apperrors.Validation("metadata extraction requires a post")
	}

	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	history := []llm.Message{
		{Role: "system", Content: metadataSystemPrompt},
		{Role: "user", Content: BuildMetadataPrompt(post)},
	}
	raw, err := e.llm.Chat(ctx, history, llm.WithTemperature(0.1))
	if err != nil {
		if apperrors.KindOf(err) != "" {
			return nil, err
		}
		return nil, apperrors.Unavailable("model request failed", err)
	}

	return ParseMetadata(raw)
}

type metadataPayload struct {
	Category             string   `json:"category"`
	SkillLevel           string   `json:"skill_level"`
	EstimatedEffortHours int      `json:"estimated_effort_hours"`
	Technologies         []string `json:"technologies"`
}

var validSkillLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// ParseMetadata pulls the JSON object out of a model response and
// validates it against the metadata schema.
func ParseMetadata(response string) (*entity.PostMetadata, error) {
	var payload metadataPayload
	if err := json.Unmarshal([]byte(extractJSON(response)), &payload); err != nil {
		return nil, apperrors.Transformation("metadata response is not valid JSON", err)
	}

	category := strings.ToLower(strings.TrimSpace(payload.Category))
	if category == "" {
		return nil, apperrors.Transformation("metadata response is missing a category", nil)
	}
	skillLevel := strings.ToLower(strings.TrimSpace(payload.SkillLevel))
	if !validSkillLevels[skillLevel] {
		return nil, apperrors.Transformation(fmt.Sprintf("metadata response has unknown skill level %q", payload.SkillLevel), nil)
	}
	if payload.EstimatedEffortHours < 0 {
		return nil, apperrors.Transformation("metadata response has negative effort hours", nil)
	}

	technologies := make([]string, 0, len(payload.Technologies))
	for _, tech := range payload.Technologies {
		if cleaned := strings.ToLower(strings.TrimSpace(tech)); cleaned != "" {
			technologies = append(technologies, cleaned)
		}
	}

	return &entity.PostMetadata{
		Category:             category,
		SkillLevel:           skillLevel,
		EstimatedEffortHours: payload.EstimatedEffortHours,
		Technologies:         technologies,
	}, nil
}

// Model responses often wrap JSON in prose or code fences.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return response
	}

	return response[startIdx : endIdx+1]
}
