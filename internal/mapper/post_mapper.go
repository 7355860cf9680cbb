package mapper

import (
	"encoding/json"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/model"

	"gorm.io/datatypes"
)

type PostMapper struct{}

func NewPostMapper() *PostMapper {
	return &PostMapper{}
}

func (m *PostMapper) ToEntity(p *model.Post) *entity.Post {
	if p == nil {
		return nil
	}

	var technologies []string
	if len(p.Technologies) > 0 {
		// Ignore unmarshal failure; an unreadable list degrades to empty.
		_ = json.Unmarshal(p.Technologies, &technologies)
	}

	return &entity.Post{
		Id:           p.Id,
		Title:        p.Title,
		Content:      p.Content,
		Url:          p.Url,
		Author:       p.Author,
		Subreddit:    p.Subreddit,
		Score:        p.Score,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
		IngestedAt:   p.IngestedAt,
		Metadata: entity.PostMetadata{
			Category:             p.Category,
			SkillLevel:           p.SkillLevel,
			EstimatedEffortHours: p.EstimatedEffortHours,
			Technologies:         technologies,
		},
		MetadataExtracted: p.MetadataExtracted,
	}
}

func (m *PostMapper) ToModel(p *entity.Post) *model.Post {
	if p == nil {
		return nil
	}

	var technologies datatypes.JSON
	if len(p.Metadata.Technologies) > 0 {
		b, err := json.Marshal(p.Metadata.Technologies)
		if err == nil {
			technologies = b
		}
	}

	return &model.Post{
		Id:                   p.Id,
		Title:                p.Title,
		Content:              p.Content,
		Url:                  p.Url,
		Author:               p.Author,
		Subreddit:            p.Subreddit,
		Score:                p.Score,
		CommentCount:         p.CommentCount,
		CreatedAt:            p.CreatedAt,
		IngestedAt:           p.IngestedAt,
		Category:             p.Metadata.Category,
		SkillLevel:           p.Metadata.SkillLevel,
		EstimatedEffortHours: p.Metadata.EstimatedEffortHours,
		Technologies:         technologies,
		MetadataExtracted:    p.MetadataExtracted,
	}
}

func (m *PostMapper) ToEntities(posts []*model.Post) []*entity.Post {
	entities := make([]*entity.Post, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PostMapper) ToModels(posts []*entity.Post) []*model.Post {
	models := make([]*model.Post, len(posts))
	for i, p := range posts {
		models[i] = m.ToModel(p)
	}
	return models
}
