package contract

import (
	"context"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/repository/specification"
)

// ScoredPost pairs a post with its raw cosine similarity for one query.
type ScoredPost struct {
	Post       *entity.Post
	Similarity float64
}

type PostEmbeddingRepository interface {
	// Upsert replaces the vector for a post id, keeping the 1:1
	// post/embedding relation under re-ingestion.
	Upsert(ctx context.Context, embedding *entity.PostEmbedding) error
	DeleteByPostId(ctx context.Context, postId string) error
	Count(ctx context.Context) (int64, error)

	// SearchSimilarWithScore runs a nearest-neighbor query with metadata
	// filter specs pushed into the store's native filtering. Results are
	// ordered by descending similarity and bounded by topK. A store failure
	// surfaces as an unavailable error; callers retry with backoff.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, topK int, specs ...specification.Specification) ([]*ScoredPost, error)
}
