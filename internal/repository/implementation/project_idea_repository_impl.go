package implementation

import (
	"context"
	"errors"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/mapper"
	"project-finder-be/internal/model"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/repository/contract"
	"project-finder-be/internal/repository/specification"

	"gorm.io/gorm"
)

type projectIdeaRepository struct {
	db     *gorm.DB
	mapper *mapper.ProjectIdeaMapper
}

func NewProjectIdeaRepository(db *gorm.DB) contract.ProjectIdeaRepository {
	return &projectIdeaRepository{db: db, mapper: mapper.NewProjectIdeaMapper()}
}

func (r *projectIdeaRepository) Create(ctx context.Context, idea *entity.ProjectIdea) error {
	if err := r.db.WithContext(ctx).Create(r.mapper.ToModel(idea)).Error; err != nil {
		return apperrors.Unavailable("failed to create project idea", err)
	}
	return nil
}

func (r *projectIdeaRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProjectIdea, error) {
	var m model.ProjectIdea
	query := r.db.WithContext(ctx).Model(&model.ProjectIdea{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Unavailable("failed to query project idea", err)
	}
	return r.mapper.ToEntity(&m), nil
}
