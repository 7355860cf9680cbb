package contract

import (
	"context"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/repository/specification"
)

type ProjectIdeaRepository interface {
	Create(ctx context.Context, idea *entity.ProjectIdea) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProjectIdea, error)
}
