package dto

import (
	"project-finder-be/internal/repository/specification"
)

type MetadataFilterRequest struct {
	Category       *string  `json:"category"`
	SkillLevel     *string  `json:"skill_level"`
	Technologies   []string `json:"technologies"`
	EffortMinHours *int     `json:"effort_min_hours"`
	EffortMaxHours *int     `json:"effort_max_hours"`
}

func (r *MetadataFilterRequest) ToFilter() specification.PostFilter {
	if r == nil {
		return specification.PostFilter{}
	}
	return specification.PostFilter{
		Category:     r.Category,
		SkillLevel:   r.SkillLevel,
		Technologies: r.Technologies,
		EffortMin:    r.EffortMinHours,
		EffortMax:    r.EffortMaxHours,
	}
}

type SearchRecommendationsRequest struct {
	Query       string                 `json:"query" validate:"required,min=3"`
	Interests   []string               `json:"interests" validate:"omitempty,max=20,dive,min=1"`
	ResultCount *int                   `json:"result_count" validate:"omitempty,min=1"`
	Filter      *MetadataFilterRequest `json:"filter"`
}

type RecommendationItemResponse struct {
	PostId               string   `json:"post_id"`
	Title                string   `json:"title"`
	Url                  string   `json:"url"`
	Subreddit            string   `json:"subreddit"`
	Similarity           float64  `json:"similarity"`
	Category             string   `json:"category,omitempty"`
	SkillLevel           string   `json:"skill_level,omitempty"`
	EstimatedEffortHours int      `json:"estimated_effort_hours,omitempty"`
	Technologies         []string `json:"technologies,omitempty"`
}

type SearchRecommendationsResponse struct {
	Mode               string                       `json:"mode"`
	EffectiveThreshold float64                      `json:"effective_threshold"`
	Results            []RecommendationItemResponse `json:"results"`
}
