package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"project-finder-be/internal/dto"
	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/pkg/logger"
	"project-finder-be/internal/repository/contract"
	"project-finder-be/internal/repository/specification"
	"project-finder-be/internal/repository/unitofwork"
	"project-finder-be/pkg/embedding"
	"project-finder-be/pkg/recommend"
	"project-finder-be/pkg/retrieval"

	"github.com/cenkalti/backoff/v5"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	interestProfileKeyPrefix = "interest_profile:"
	interestProfileTTL       = 24 * time.Hour
)

type IRecommendationService interface {
	Search(ctx context.Context, sessionId string, req *dto.SearchRecommendationsRequest) (*dto.SearchRecommendationsResponse, error)
	Transform(ctx context.Context, sessionId string, req *dto.TransformIdeaRequest) (*dto.ProjectIdeaResponse, error)
}

type recommendationService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	transformer       *recommend.Transformer
	retrievalCfg      retrieval.Config
	defaultMode       retrieval.Mode
	redisClient       *redis.Client
	ideaCache         *gocache.Cache
	log               logger.ILogger
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	transformer *recommend.Transformer,
	retrievalCfg retrieval.Config,
	defaultMode retrieval.Mode,
	redisClient *redis.Client,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		transformer:       transformer,
		retrievalCfg:      retrievalCfg,
		defaultMode:       defaultMode,
		redisClient:       redisClient,
		ideaCache:         gocache.New(15*time.Minute, 30*time.Minute),
		log:               log,
	}
}

func (s *recommendationService) Search(ctx context.Context, sessionId string, req *dto.SearchRecommendationsRequest) (*dto.SearchRecommendationsResponse, error) {
	interests := s.resolveInterests(ctx, sessionId, req.Interests)

	filterSpecs, err := req.Filter.ToFilter().Specifications()
	if err != nil {
		return nil, err
	}

	fixedCount := req.ResultCount
	if fixedCount == nil && s.defaultMode == retrieval.ModeFixed {
		count := s.retrievalCfg.DefaultResultCount
		fixedCount = &count
	}
	decision := retrieval.Decide(s.retrievalCfg, req.Query, len(interests), fixedCount)

	queryVector, err := s.embedWithRetry(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := retryUnavailable(ctx, func() ([]*contract.ScoredPost, error) {
		return uow.PostEmbeddingRepository().SearchSimilarWithScore(ctx, queryVector, s.retrievalCfg.FetchTopK, filterSpecs...)
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]entity.Candidate, 0, len(scored))
	for _, row := range scored {
		candidates = append(candidates, entity.Candidate{Post: row.Post, Score: row.Similarity})
	}
	selected := retrieval.Select(candidates, decision)

	s.log.Info("recommendation", "search completed", map[string]interface{}{
		"mode":       string(decision.Mode),
		"threshold":  decision.EffectiveThreshold,
		"candidates": len(candidates),
		"selected":   len(selected),
	})

	results := make([]dto.RecommendationItemResponse, 0, len(selected))
	for _, candidate := range selected {
		results = append(results, toRecommendationItem(candidate))
	}
	return &dto.SearchRecommendationsResponse{
		Mode:               string(decision.Mode),
		EffectiveThreshold: decision.EffectiveThreshold,
		Results:            results,
	}, nil
}

// resolveInterests prefers the request's interests and falls back to the
// session's cached profile. A fresh interest set refreshes the cache. The
// cache is best effort: a redis failure never fails a search.
func (s *recommendationService) resolveInterests(ctx context.Context, sessionId string, requested []string) []string {
	interests := recommend.NormalizeInterests(requested)
	key := interestProfileKeyPrefix + sessionId

	if len(interests) > 0 {
		if s.redisClient != nil {
			payload, err := json.Marshal(interests)
			if err == nil {
				if err := s.redisClient.Set(ctx, key, payload, interestProfileTTL).Err(); err != nil {
					s.log.Warn("recommendation", "failed to cache interest profile", map[string]interface{}{"error": err.Error()})
				}
			}
		}
		return interests
	}

	if s.redisClient == nil {
		return nil
	}
	payload, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("recommendation", "failed to load interest profile", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}
	var cached []string
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil
	}
	return cached
}

func (s *recommendationService) embedWithRetry(ctx context.Context, query string) ([]float32, error) {
	res, err := retryUnavailable(ctx, func() (*embedding.EmbeddingResponse, error) {
		return s.embeddingProvider.Generate(ctx, query, "RETRIEVAL_QUERY")
	})
	if err != nil {
		if apperrors.KindOf(err) != "" {
			return nil, err
		}
		return nil, apperrors.Unavailable("failed to embed query", err)
	}
	return res.Embedding.Values, nil
}

// retryUnavailable retries transient dependency failures with exponential
// backoff. Typed non-unavailable errors abort immediately.
func retryUnavailable[T any](ctx context.Context, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		result, err := op()
		if err != nil {
			kind := apperrors.KindOf(err)
			if kind != "" && kind != apperrors.KindUnavailable {
				return result, backoff.Permanent(err)
			}
			return result, err
		}
		return result, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(3))
}

func (s *recommendationService) Transform(ctx context.Context, sessionId string, req *dto.TransformIdeaRequest) (*dto.ProjectIdeaResponse, error) {
	interests := s.resolveInterests(ctx, sessionId, req.Interests)

	kind := entity.IdeaKindTransformed
	if req.Kind == string(entity.IdeaKindDirect) {
		kind = entity.IdeaKindDirect
	}

	cacheKey := req.PostId + "|" + string(kind) + "|" + strings.Join(interests, ",")
	if cached, found := s.ideaCache.Get(cacheKey); found {
		if idea, ok := cached.(*entity.ProjectIdea); ok {
			return toProjectIdeaResponse(idea), nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.PostRepository().FindOne(ctx, specification.ByStringID{ID: req.PostId})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NotFound("post %s not found", req.PostId)
	}

	var idea *entity.ProjectIdea
	if kind == entity.IdeaKindDirect {
		idea = recommend.Direct(post, interests)
	} else {
		idea, err = s.transformer.Transform(ctx, post, interests)
		if err != nil {
			return nil, err
		}
	}

	if err := uow.ProjectIdeaRepository().Create(ctx, idea); err != nil {
		return nil, err
	}
	s.ideaCache.Set(cacheKey, idea, gocache.DefaultExpiration)

	s.log.Info("recommendation", "idea created", map[string]interface{}{
		"idea_id":      idea.Id.String(),
		"kind":         string(idea.Kind),
		"base_post_id": idea.BasePostId,
	})
	return toProjectIdeaResponse(idea), nil
}

func toRecommendationItem(candidate entity.Candidate) dto.RecommendationItemResponse {
	item := dto.RecommendationItemResponse{
		Similarity: candidate.Score,
	}
	if candidate.Post != nil {
		item.PostId = candidate.Post.Id
		item.Title = candidate.Post.Title
		item.Url = candidate.Post.Url
		item.Subreddit = candidate.Post.Subreddit
		if candidate.Post.MetadataExtracted {
			item.Category = candidate.Post.Metadata.Category
			item.SkillLevel = candidate.Post.Metadata.SkillLevel
			item.EstimatedEffortHours = candidate.Post.Metadata.EstimatedEffortHours
			item.Technologies = candidate.Post.Metadata.Technologies
		}
	}
	return item
}

func toProjectIdeaResponse(idea *entity.ProjectIdea) *dto.ProjectIdeaResponse {
	return &dto.ProjectIdeaResponse{
		Id:         idea.Id.String(),
		Kind:       string(idea.Kind),
		Content:    idea.Content,
		BasePostId: idea.BasePostId,
		Interests:  idea.Interests,
		CreatedAt:  idea.CreatedAt,
	}
}
