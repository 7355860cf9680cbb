package contract

import (
	"context"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/repository/specification"
)

type PostRepository interface {
	// Upsert inserts or replaces a post by its source id, keeping
	// re-ingestion idempotent.
	Upsert(ctx context.Context, post *entity.Post) error
	UpsertBulk(ctx context.Context, posts []*entity.Post) error
	// UpdateMetadata folds extracted metadata into an existing post and
	// marks extraction complete. Posts are otherwise never mutated.
	UpdateMetadata(ctx context.Context, postId string, metadata entity.PostMetadata) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
