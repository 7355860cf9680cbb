package service

import (
	"context"
	"encoding/json"
	"strings"

	"project-finder-be/internal/config"
	"project-finder-be/internal/dto"
	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/pkg/logger"
	"project-finder-be/internal/repository/unitofwork"
	"project-finder-be/pkg/events"
	pktNats "project-finder-be/pkg/nats"
	"project-finder-be/pkg/reddit"
)

type IIngestionService interface {
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
}

type ingestionService struct {
	uowFactory       unitofwork.RepositoryFactory
	client           *reddit.Client
	cfg              config.RedditConfig
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewIngestionService(
	uowFactory unitofwork.RepositoryFactory,
	client *reddit.Client,
	cfg config.RedditConfig,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		uowFactory:       uowFactory,
		client:           client,
		cfg:              cfg,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

// ProcessPosts drops posts that carry no searchable content: removed or
// deleted bodies and blank titles.
func ProcessPosts(posts []*entity.Post) []*entity.Post {
	kept := make([]*entity.Post, 0, len(posts))
	for _, post := range posts {
		if strings.TrimSpace(post.Title) == "" {
			continue
		}
		content := strings.TrimSpace(post.Content)
		if content == "[deleted]" || content == "[removed]" {
			continue
		}
		kept = append(kept, post)
	}
	return kept
}

func (s *ingestionService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	subreddits := s.cfg.Subreddits
	if req != nil && len(req.Subreddits) > 0 {
		subreddits = req.Subreddits
	}

	// One unreachable subreddit must not sink the whole run.
	var collected []*entity.Post
	failures := make(map[string]string)
	fetched := 0
	for _, subreddit := range subreddits {
		posts, err := s.client.FetchHot(ctx, subreddit, s.cfg.MaxPostsPerSource)
		if err != nil {
			s.log.Warn("ingestion", "subreddit fetch failed", map[string]interface{}{
				"subreddit": subreddit,
				"error":     err.Error(),
			})
			failures[subreddit] = err.Error()
			continue
		}
		fetched += len(posts)
		collected = append(collected, posts...)
	}

	if len(failures) == len(subreddits) && len(subreddits) > 0 {
		return nil, apperrors.Unavailable("all subreddit fetches failed", nil)
	}

	kept := ProcessPosts(collected)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PostRepository().UpsertBulk(ctx, kept); err != nil {
		return nil, err
	}

	for _, post := range kept {
		payload, err := json.Marshal(dto.EmbedPostMessage{PostId: post.Id})
		if err != nil {
			continue
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.log.Warn("ingestion", "failed to enqueue embedding job", map[string]interface{}{
				"post_id": post.Id,
				"error":   err.Error(),
			})
		}
	}

	// Completion event is auxiliary; a bus failure never fails the run.
	if s.eventPublisher != nil {
		evt := events.IngestionCompleted(fetched, len(kept), subreddits)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("ingestion", "failed to publish completion event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.log.Info("ingestion", "refresh completed", map[string]interface{}{
		"fetched": fetched,
		"stored":  len(kept),
	})

	res := &dto.RefreshResponse{
		Fetched:    fetched,
		Stored:     len(kept),
		Subreddits: subreddits,
	}
	if len(failures) > 0 {
		res.Failures = failures
	}
	return res, nil
}
