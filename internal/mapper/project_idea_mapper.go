package mapper

import (
	"encoding/json"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/model"

	"gorm.io/datatypes"
)

type ProjectIdeaMapper struct{}

func NewProjectIdeaMapper() *ProjectIdeaMapper {
	return &ProjectIdeaMapper{}
}

func (m *ProjectIdeaMapper) ToEntity(i *model.ProjectIdea) *entity.ProjectIdea {
	if i == nil {
		return nil
	}

	var interests []string
	if len(i.Interests) > 0 {
		_ = json.Unmarshal(i.Interests, &interests)
	}

	return &entity.ProjectIdea{
		Id:         i.Id,
		Kind:       entity.IdeaKind(i.Kind),
		Content:    i.Content,
		BasePostId: i.BasePostId,
		Interests:  interests,
		CreatedAt:  i.CreatedAt,
	}
}

func (m *ProjectIdeaMapper) ToModel(i *entity.ProjectIdea) *model.ProjectIdea {
	if i == nil {
		return nil
	}

	var interests datatypes.JSON
	if len(i.Interests) > 0 {
		b, err := json.Marshal(i.Interests)
		if err == nil {
			interests = b
		}
	}

	return &model.ProjectIdea{
		Id:         i.Id,
		Kind:       string(i.Kind),
		Content:    i.Content,
		BasePostId: i.BasePostId,
		Interests:  interests,
		CreatedAt:  i.CreatedAt,
	}
}
