package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/repository/specification"
	"project-finder-be/internal/repository/unitofwork"
	"project-finder-be/pkg/database"
	"project-finder-be/pkg/plan"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.PostRepository())
	assert.NotNil(t, uow.PostEmbeddingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Post Repository", func(t *testing.T) {
		count, err := uow.PostRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Post count: %d", count)
	})

	t.Run("Check Post Embedding Repository", func(t *testing.T) {
		count, err := uow.PostEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("PostEmbedding count: %d", count)
	})

	t.Run("Post Upsert Is Idempotent", func(t *testing.T) {
		ctx := context.Background()
		postId := "it-" + uuid.New().String()[:8]
		post := &entity.Post{
			Id:        postId,
			Title:     "Integration test post",
			Content:   "original content",
			Subreddit: "test",
			CreatedAt: time.Now().UTC(),
		}

		require.NoError(t, uow.PostRepository().Upsert(ctx, post))

		post.Content = "refreshed content"
		require.NoError(t, uow.PostRepository().Upsert(ctx, post))

		found, err := uow.PostRepository().FindOne(ctx, specification.ByStringID{ID: postId})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "refreshed content", found.Content)
	})

	t.Run("Plan Version History Round Trip", func(t *testing.T) {
		ctx := context.Background()

		p, err := plan.New(uuid.New(), "integration-session", "v0 plan content", time.Now())
		require.NoError(t, err)

		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.PlanRepository().Create(ctx, p))
		require.NoError(t, uow.Commit())

		version, err := plan.Append(p, "make it weekly milestones", "v1 plan content", time.Now())
		require.NoError(t, err)
		require.NoError(t, uow.PlanRepository().AppendVersion(ctx, version))

		loaded, err := uow.PlanRepository().FindWithVersions(ctx, p.Id)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		require.Len(t, loaded.Versions, 2)
		assert.Equal(t, 0, loaded.Versions[0].VersionIndex)
		assert.Equal(t, 1, loaded.Versions[1].VersionIndex)
		assert.Equal(t, "v1 plan content", loaded.Versions[1].Content)
	})
}
