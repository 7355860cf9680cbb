package contract

import (
	"context"

	"project-finder-be/internal/entity"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	// AppendVersion persists one new version row; existing rows are never
	// touched. The unique (plan_id, version_index) index backs the
	// append-only invariant.
	AppendVersion(ctx context.Context, version *entity.PlanVersion) error
	// FindWithVersions loads a plan and its full history ordered by
	// version index. Returns nil when the plan does not exist.
	FindWithVersions(ctx context.Context, planId uuid.UUID) (*entity.Plan, error)
}
