package implementation

import (
	"context"
	"errors"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/mapper"
	"project-finder-be/internal/model"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type planRepository struct {
	db     *gorm.DB
	mapper *mapper.PlanMapper
}

func NewPlanRepository(db *gorm.DB) contract.PlanRepository {
	return &planRepository{db: db, mapper: mapper.NewPlanMapper()}
}

func (r *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	if err := r.db.WithContext(ctx).Create(r.mapper.ToModel(plan)).Error; err != nil {
		return apperrors.Unavailable("failed to create plan", err)
	}
	for i := range plan.Versions {
		if err := r.AppendVersion(ctx, &plan.Versions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *planRepository) AppendVersion(ctx context.Context, version *entity.PlanVersion) error {
	if err := r.db.WithContext(ctx).Create(r.mapper.VersionToModel(version)).Error; err != nil {
		return apperrors.Unavailable("failed to append plan version", err)
	}
	return nil
}

func (r *planRepository) FindWithVersions(ctx context.Context, planId uuid.UUID) (*entity.Plan, error) {
	var plan model.Plan
	err := r.db.WithContext(ctx).Where("id = ?", planId).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Unavailable("failed to query plan", err)
	}

	var versions []*model.PlanVersion
	err = r.db.WithContext(ctx).
		Where("plan_id = ?", planId).
		Order("version_index ASC").
		Find(&versions).Error
	if err != nil {
		return nil, apperrors.Unavailable("failed to query plan versions", err)
	}

	return r.mapper.ToEntity(&plan, versions), nil
}
