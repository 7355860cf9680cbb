package dto

import "time"

type TransformIdeaRequest struct {
	PostId    string   `json:"post_id" validate:"required"`
	Kind      string   `json:"kind" validate:"omitempty,oneof=direct transformed"`
	Interests []string `json:"interests" validate:"omitempty,max=20,dive,min=1"`
}

type ProjectIdeaResponse struct {
	Id         string    `json:"id"`
	Kind       string    `json:"kind"`
	Content    string    `json:"content"`
	BasePostId string    `json:"base_post_id"`
	Interests  []string  `json:"interests,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
