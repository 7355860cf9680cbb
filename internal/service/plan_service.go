package service

import (
	"context"
	"sync"
	"time"

	"project-finder-be/internal/dto"
	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/pkg/logger"
	"project-finder-be/internal/repository/specification"
	"project-finder-be/internal/repository/unitofwork"
	"project-finder-be/pkg/llm"
	"project-finder-be/pkg/plan"

	"github.com/google/uuid"
)

const planSystemPrompt = `You write actionable build plans for side projects.
Structure the plan as numbered milestones, each with concrete tasks.
Return the plan text only.`

type IPlanService interface {
	Generate(ctx context.Context, ownerId string, req *dto.GeneratePlanRequest) (*dto.PlanResponse, error)
	Iterate(ctx context.Context, ownerId string, planId uuid.UUID, req *dto.IteratePlanRequest) (*dto.PlanResponse, error)
	Show(ctx context.Context, ownerId string, planId uuid.UUID) (*dto.PlanResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	llm        llm.LLMProvider
	log        logger.ILogger

	// Iterations on the same plan are serialized so version indexes stay
	// contiguous; the unique (plan_id, version_index) index is the backstop.
	mu        sync.Mutex
	planLocks map[uuid.UUID]*sync.Mutex
}

func NewPlanService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		llm:        llmProvider,
		log:        log,
		planLocks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *planService) lockFor(planId uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.planLocks[planId]
	if !ok {
		lock = &sync.Mutex{}
		s.planLocks[planId] = lock
	}
	return lock
}

func (s *planService) Generate(ctx context.Context, ownerId string, req *dto.GeneratePlanRequest) (*dto.PlanResponse, error) {
	ideaId, err := uuid.Parse(req.IdeaId)
	if err != nil {
		return nil, apperrors.Validation("idea id %q is not a valid uuid", req.IdeaId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.ProjectIdeaRepository().FindOne(ctx, specification.ByID{ID: ideaId})
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, apperrors.NotFound("project idea %s not found", req.IdeaId)
	}

	content, err := s.generate(ctx, buildInitialPlanPrompt(idea))
	if err != nil {
		return nil, err
	}

	p, err := plan.New(idea.Id, ownerId, content, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Unavailable("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.PlanRepository().Create(ctx, p); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, apperrors.Unavailable("failed to commit plan", err)
	}

	s.log.Info("plan", "plan generated", map[string]interface{}{
		"plan_id": p.Id.String(),
		"idea_id": idea.Id.String(),
	})
	return toPlanResponse(p), nil
}

func (s *planService) Iterate(ctx context.Context, ownerId string, planId uuid.UUID, req *dto.IteratePlanRequest) (*dto.PlanResponse, error) {
	lock := s.lockFor(planId)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.loadOwnedPlan(ctx, uow, ownerId, planId)
	if err != nil {
		return nil, err
	}

	latest := plan.Latest(p)
	revised, err := s.generate(ctx, buildIteratePlanPrompt(latest.Content, req.Feedback))
	if err != nil {
		return nil, err
	}

	version, err := plan.Append(p, req.Feedback, revised, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Unavailable("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.PlanRepository().AppendVersion(ctx, version); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, apperrors.Unavailable("failed to commit plan version", err)
	}

	s.log.Info("plan", "plan iterated", map[string]interface{}{
		"plan_id":       p.Id.String(),
		"version_index": version.VersionIndex,
	})
	return toPlanResponse(p), nil
}

func (s *planService) Show(ctx context.Context, ownerId string, planId uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.loadOwnedPlan(ctx, uow, ownerId, planId)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

// loadOwnedPlan hides other sessions' plans behind not-found.
func (s *planService) loadOwnedPlan(ctx context.Context, uow unitofwork.UnitOfWork, ownerId string, planId uuid.UUID) (*entity.Plan, error) {
	p, err := uow.PlanRepository().FindWithVersions(ctx, planId)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OwnerId != ownerId {
		return nil, apperrors.NotFound("plan %s not found", planId)
	}
	return p, nil
}

func (s *planService) generate(ctx context.Context, prompt string) (string, error) {
	history := []llm.Message{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: prompt},
	}
	content, err := s.llm.Chat(ctx, history, llm.WithTemperature(0.4))
	if err != nil {
		if apperrors.KindOf(err) != "" {
			return "", err
		}
		return "", apperrors.Unavailable("model request failed", err)
	}
	return content, nil
}

func buildInitialPlanPrompt(idea *entity.ProjectIdea) string {
	return "Write a build plan for the following project idea.\n\n" + idea.Content
}

func buildIteratePlanPrompt(current string, feedback string) string {
	return "Revise the following build plan according to the feedback.\n\nCurrent plan:\n" +
		current + "\n\nFeedback:\n" + feedback +
		"\n\nReturn the full revised plan."
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	versions := make([]dto.PlanVersionResponse, 0, len(p.Versions))
	for _, v := range p.Versions {
		versions = append(versions, dto.PlanVersionResponse{
			VersionIndex:       v.VersionIndex,
			Content:            v.Content,
			CreatedFrom:        string(v.CreatedFrom),
			FeedbackText:       v.FeedbackText,
			ParentVersionIndex: v.ParentVersionIndex,
			CreatedAt:          v.CreatedAt,
		})
	}
	return &dto.PlanResponse{
		Id:        p.Id.String(),
		IdeaId:    p.IdeaId.String(),
		CreatedAt: p.CreatedAt,
		Versions:  versions,
	}
}
