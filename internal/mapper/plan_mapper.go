package mapper

import (
	"project-finder-be/internal/entity"
	"project-finder-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.Plan, versions []*model.PlanVersion) *entity.Plan {
	if p == nil {
		return nil
	}

	vs := make([]entity.PlanVersion, len(versions))
	for i, v := range versions {
		vs[i] = *m.VersionToEntity(v)
	}

	return &entity.Plan{
		Id:        p.Id,
		IdeaId:    p.IdeaId,
		OwnerId:   p.OwnerId,
		CreatedAt: p.CreatedAt,
		Versions:  vs,
	}
}

func (m *PlanMapper) ToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:        p.Id,
		IdeaId:    p.IdeaId,
		OwnerId:   p.OwnerId,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PlanMapper) VersionToEntity(v *model.PlanVersion) *entity.PlanVersion {
	if v == nil {
		return nil
	}
	return &entity.PlanVersion{
		Id:                 v.Id,
		PlanId:             v.PlanId,
		VersionIndex:       v.VersionIndex,
		Content:            v.Content,
		CreatedFrom:        entity.PlanOrigin(v.CreatedFrom),
		FeedbackText:       v.FeedbackText,
		ParentVersionIndex: v.ParentVersionIndex,
		CreatedAt:          v.CreatedAt,
	}
}

func (m *PlanMapper) VersionToModel(v *entity.PlanVersion) *model.PlanVersion {
	if v == nil {
		return nil
	}
	return &model.PlanVersion{
		Id:                 v.Id,
		PlanId:             v.PlanId,
		VersionIndex:       v.VersionIndex,
		Content:            v.Content,
		CreatedFrom:        string(v.CreatedFrom),
		FeedbackText:       v.FeedbackText,
		ParentVersionIndex: v.ParentVersionIndex,
		CreatedAt:          v.CreatedAt,
	}
}
