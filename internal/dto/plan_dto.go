package dto

import "time"

type GeneratePlanRequest struct {
	IdeaId string `json:"idea_id" validate:"required,uuid"`
}

type IteratePlanRequest struct {
	Feedback string `json:"feedback" validate:"required,min=3"`
}

type PlanVersionResponse struct {
	VersionIndex       int       `json:"version_index"`
	Content            string    `json:"content"`
	CreatedFrom        string    `json:"created_from"`
	FeedbackText       string    `json:"feedback_text,omitempty"`
	ParentVersionIndex *int      `json:"parent_version_index,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type PlanResponse struct {
	Id        string                `json:"id"`
	IdeaId    string                `json:"idea_id"`
	CreatedAt time.Time             `json:"created_at"`
	Versions  []PlanVersionResponse `json:"versions"`
}
