package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanOrigin string

const (
	PlanOriginInitial  PlanOrigin = "initial_generation"
	PlanOriginFeedback PlanOrigin = "feedback_iteration"
)

// PlanVersion is one immutable snapshot in a plan's iteration history.
// FeedbackText and ParentVersionIndex are set only for feedback iterations.
type PlanVersion struct {
	Id                 uuid.UUID
	PlanId             uuid.UUID
	VersionIndex       int
	Content            string
	CreatedFrom        PlanOrigin
	FeedbackText       string
	ParentVersionIndex *int
	CreatedAt          time.Time
}

// Plan holds an append-only, contiguously indexed version history starting
// at 0. Versions are never mutated or deleted.
type Plan struct {
	Id        uuid.UUID
	IdeaId    uuid.UUID
	OwnerId   string
	CreatedAt time.Time
	Versions  []PlanVersion
}
