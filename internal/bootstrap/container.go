package bootstrap

import (
	"context"
	"log"

	"project-finder-be/internal/config"
	"project-finder-be/internal/controller"
	"project-finder-be/internal/pkg/logger"
	"project-finder-be/internal/repository/unitofwork"
	"project-finder-be/internal/service"
	"project-finder-be/pkg/embedding"
	"project-finder-be/pkg/llm"
	"project-finder-be/pkg/llm/factory"
	pktNats "project-finder-be/pkg/nats"
	"project-finder-be/pkg/recommend"
	"project-finder-be/pkg/reddit"
	"project-finder-be/pkg/retrieval"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RecommendationController controller.IRecommendationController
	PlanController           controller.IPlanController
	IngestionController      controller.IIngestionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	baseLLM, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	llmProvider := llm.NewBreakerProvider(baseLLM)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	redditClient := reddit.NewClient(cfg.Reddit.UserAgent, cfg.Reddit.RequestsPerMinute)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.EmbedPostTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedPostTopic,
		uowFactory,
		embeddingProvider,
		recommend.NewExtractor(llmProvider),
	)

	retrievalCfg := retrieval.DefaultConfig()
	defaultMode := retrieval.ModeThreshold
	if cfg.Retrieval.Mode == string(retrieval.ModeFixed) {
		defaultMode = retrieval.ModeFixed
	}

	recommendationService := service.NewRecommendationService(
		uowFactory,
		embeddingProvider,
		recommend.NewTransformer(llmProvider),
		retrievalCfg,
		defaultMode,
		rdb,
		sysLogger,
	)
	planService := service.NewPlanService(uowFactory, llmProvider, sysLogger)
	ingestionService := service.NewIngestionService(
		uowFactory,
		redditClient,
		cfg.Reddit,
		publisherService,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		RecommendationController: controller.NewRecommendationController(recommendationService),
		PlanController:           controller.NewPlanController(planService),
		IngestionController:      controller.NewIngestionController(ingestionService),
		ConsumerService:          consumerService,
		Logger:                   sysLogger,
	}
}
