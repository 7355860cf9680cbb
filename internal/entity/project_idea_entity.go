package entity

import (
	"time"

	"github.com/google/uuid"
)

type IdeaKind string

const (
	// IdeaKindDirect references a post's content unmodified.
	IdeaKindDirect IdeaKind = "direct"
	// IdeaKindTransformed is a novel idea generated from a base post.
	IdeaKindTransformed IdeaKind = "transformed"
)

// ProjectIdea is immutable once created. BasePostId is the lineage pointer
// back to the post the idea was derived from.
type ProjectIdea struct {
	Id         uuid.UUID
	Kind       IdeaKind
	Content    string
	BasePostId string
	Interests  []string
	CreatedAt  time.Time
}
