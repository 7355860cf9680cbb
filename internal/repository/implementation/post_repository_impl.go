package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/mapper"
	"project-finder-be/internal/model"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/repository/contract"
	"project-finder-be/internal/repository/specification"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postRepository struct {
	db     *gorm.DB
	mapper *mapper.PostMapper
}

func NewPostRepository(db *gorm.DB) contract.PostRepository {
	return &postRepository{db: db, mapper: mapper.NewPostMapper()}
}

// Re-ingesting a post refreshes its source fields but never claws back
// already extracted metadata.
var postConflictColumns = []string{
	"title", "content", "url", "author", "subreddit",
	"score", "comment_count", "created_at", "ingested_at",
}

func (r *postRepository) Upsert(ctx context.Context, post *entity.Post) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(postConflictColumns),
	}).Create(r.mapper.ToModel(post)).Error
	if err != nil {
		return apperrors.Unavailable("failed to upsert post", err)
	}
	return nil
}

func (r *postRepository) UpsertBulk(ctx context.Context, posts []*entity.Post) error {
	if len(posts) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(postConflictColumns),
	}).CreateInBatches(r.mapper.ToModels(posts), 100).Error
	if err != nil {
		return apperrors.Unavailable("failed to upsert posts", err)
	}
	return nil
}

func (r *postRepository) UpdateMetadata(ctx context.Context, postId string, metadata entity.PostMetadata) error {
	techs, err := json.Marshal(metadata.Technologies)
	if err != nil {
		return apperrors.Transformation("failed to encode technologies", err)
	}
	result := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postId).
		Updates(map[string]interface{}{
			"category":               strings.ToLower(metadata.Category),
			"skill_level":            strings.ToLower(metadata.SkillLevel),
			"estimated_effort_hours": metadata.EstimatedEffortHours,
			"technologies":           datatypes.JSON(techs),
			"metadata_extracted":     true,
		})
	if result.Error != nil {
		return apperrors.Unavailable("failed to update post metadata", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("post %s not found", postId)
	}
	return nil
}

func (r *postRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	var m model.Post
	query := r.db.WithContext(ctx).Model(&model.Post{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Unavailable("failed to query post", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *postRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	var models []*model.Post
	query := r.db.WithContext(ctx).Model(&model.Post{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Unavailable("failed to query posts", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *postRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Post{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, apperrors.Unavailable("failed to count posts", err)
	}
	return count, nil
}
