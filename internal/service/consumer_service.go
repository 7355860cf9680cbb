package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"project-finder-be/internal/dto"
	"project-finder-be/internal/entity"
	"project-finder-be/internal/repository/specification"
	"project-finder-be/internal/repository/unitofwork"
	"project-finder-be/pkg/embedding"
	"project-finder-be/pkg/recommend"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	extractor         *recommend.Extractor
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	extractor *recommend.Extractor,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		extractor:         extractor,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedPostMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embedding for PostId: %s", payload.PostId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByStringID{ID: payload.PostId})
	if err != nil {
		log.Printf("[ERROR] Failed to get post %s: %v", payload.PostId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if post == nil {
		log.Printf("[ERROR] Post not found: %s", payload.PostId)
		msg.Ack() // Post gone? Ack.
		return
	}

	document := buildDocument(post)

	res, err := cs.embeddingProvider.Generate(ctx, document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for post %s: %v", payload.PostId, err)
		msg.Nack()
		return
	}

	err = uow.PostEmbeddingRepository().Upsert(ctx, &entity.PostEmbedding{
		Id:             uuid.New(),
		PostId:         post.Id,
		Document:       document,
		EmbeddingValue: res.Embedding.Values,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		log.Printf("[ERROR] Failed to upsert embedding for post %s: %v", payload.PostId, err)
		msg.Nack()
		return
	}

	// Metadata extraction is one-shot per post; a failed classification is
	// logged and retried on the next ingestion of the same post.
	if !post.MetadataExtracted && cs.extractor != nil {
		metadata, err := cs.extractor.ExtractMetadata(ctx, post)
		if err != nil {
			log.Printf("[WARN] Metadata extraction failed for post %s: %v", payload.PostId, err)
		} else if err := uow.PostRepository().UpdateMetadata(ctx, post.Id, *metadata); err != nil {
			log.Printf("[WARN] Failed to store metadata for post %s: %v", payload.PostId, err)
		}
	}

	log.Printf("[SUCCESS] Post embedded: %s", payload.PostId)
	msg.Ack()
}

func buildDocument(post *entity.Post) string {
	return fmt.Sprintf("Title: %s\nSubreddit: %s\n\n%s", post.Title, post.Subreddit, post.Content)
}
