package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostEmbedding associates one fixed-dimension vector with a post's text.
// Regenerated only when the source text changes (re-ingestion under same id).
type PostEmbedding struct {
	Id             uuid.UUID
	PostId         string
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
