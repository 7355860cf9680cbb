package mapper

import (
	"project-finder-be/internal/entity"
	"project-finder-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type PostEmbeddingMapper struct{}

func NewPostEmbeddingMapper() *PostEmbeddingMapper {
	return &PostEmbeddingMapper{}
}

func (m *PostEmbeddingMapper) ToEntity(e *model.PostEmbedding) *entity.PostEmbedding {
	if e == nil {
		return nil
	}
	return &entity.PostEmbedding{
		Id:             e.Id,
		PostId:         e.PostId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *PostEmbeddingMapper) ToModel(e *entity.PostEmbedding) *model.PostEmbedding {
	if e == nil {
		return nil
	}
	return &model.PostEmbedding{
		Id:             e.Id,
		PostId:         e.PostId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}
