package unitofwork

import (
	"context"

	"project-finder-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PostRepository() contract.PostRepository
	PostEmbeddingRepository() contract.PostEmbeddingRepository
	ProjectIdeaRepository() contract.ProjectIdeaRepository
	PlanRepository() contract.PlanRepository
}
