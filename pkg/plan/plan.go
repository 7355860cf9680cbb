package plan

import (
	"strings"
	"time"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"

	"github.com/google/uuid"
)

// New builds a plan with its initial version at index 0. The version
// history is append-only from here on.
func New(ideaId uuid.UUID, ownerId string, content string, now time.Time) (*entity.Plan, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Transformation("generated plan is empty", nil)
	}

	planId := uuid.New()
	return &entity.Plan{
		Id:        planId,
		IdeaId:    ideaId,
		OwnerId:   ownerId,
		CreatedAt: now,
		Versions: []entity.PlanVersion{
			{
				Id:           uuid.New(),
				PlanId:       planId,
				VersionIndex: 0,
				Content:      content,
				CreatedFrom:  entity.PlanOriginInitial,
				CreatedAt:    now,
			},
		},
	}, nil
}

// Latest returns the newest version, or nil for an empty history.
func Latest(p *entity.Plan) *entity.PlanVersion {
	if p == nil || len(p.Versions) == 0 {
		return nil
	}
	return &p.Versions[len(p.Versions)-1]
}

// Append records one feedback iteration as a new version. The revised
// content must differ from the latest version; handing back the same
// text means the iteration made no progress and nothing is recorded.
func Append(p *entity.Plan, feedback string, revised string, now time.Time) (*entity.PlanVersion, error) {
	latest := Latest(p)
	if latest == nil {
		return nil, apperrors.NotFound("plan has no versions")
	}
	if strings.TrimSpace(revised) == "" {
		return nil, apperrors.NoProgress("revision produced no content")
	}
	if revised == latest.Content {
		return nil, apperrors.NoProgress("revision is identical to the current plan")
	}

	parent := latest.VersionIndex
	version := entity.PlanVersion{
		Id:                 uuid.New(),
		PlanId:             p.Id,
		VersionIndex:       latest.VersionIndex + 1,
		Content:            revised,
		CreatedFrom:        entity.PlanOriginFeedback,
		FeedbackText:       feedback,
		ParentVersionIndex: &parent,
		CreatedAt:          now,
	}
	p.Versions = append(p.Versions, version)
	return &p.Versions[len(p.Versions)-1], nil
}
