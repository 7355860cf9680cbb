package implementation

import (
	"context"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/mapper"
	"project-finder-be/internal/model"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/repository/contract"
	"project-finder-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postEmbeddingRepository struct {
	db         *gorm.DB
	mapper     *mapper.PostEmbeddingMapper
	postMapper *mapper.PostMapper
}

func NewPostEmbeddingRepository(db *gorm.DB) contract.PostEmbeddingRepository {
	return &postEmbeddingRepository{
		db:         db,
		mapper:     mapper.NewPostEmbeddingMapper(),
		postMapper: mapper.NewPostMapper(),
	}
}

func (r *postEmbeddingRepository) Upsert(ctx context.Context, embedding *entity.PostEmbedding) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value"}),
	}).Create(r.mapper.ToModel(embedding)).Error
	if err != nil {
		return apperrors.Unavailable("failed to upsert post embedding", err)
	}
	return nil
}

func (r *postEmbeddingRepository) DeleteByPostId(ctx context.Context, postId string) error {
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postId).
		Delete(&model.PostEmbedding{}).Error
	if err != nil {
		return apperrors.Unavailable("failed to delete post embedding", err)
	}
	return nil
}

func (r *postEmbeddingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PostEmbedding{}).Count(&count).Error; err != nil {
		return 0, apperrors.Unavailable("failed to count post embeddings", err)
	}
	return count, nil
}

// scoredPostRow carries the joined post columns plus the computed
// similarity of one nearest-neighbor result.
type scoredPostRow struct {
	model.Post
	Similarity float64
}

func (r *postEmbeddingRepository) SearchSimilarWithScore(ctx context.Context, embedding []float32, topK int, specs ...specification.Specification) ([]*contract.ScoredPost, error) {
	queryVector := pgvector.NewVector(embedding)

	// Cosine distance, so similarity = 1 - (a <=> b). Metadata specs are
	// pushed into the same query so filtering happens before the limit.
	query := r.db.WithContext(ctx).
		Table("post_embeddings").
		Select("posts.*, 1 - (post_embeddings.embedding_value <=> ?) AS similarity", queryVector).
		Joins("JOIN posts ON posts.id = post_embeddings.post_id")
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	var rows []scoredPostRow
	err := query.
		Order("similarity DESC").
		Limit(topK).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Unavailable("failed to run similarity search", err)
	}

	results := make([]*contract.ScoredPost, 0, len(rows))
	for i := range rows {
		results = append(results, &contract.ScoredPost{
			Post:       r.postMapper.ToEntity(&rows[i].Post),
			Similarity: rows[i].Similarity,
		})
	}
	return results, nil
}
