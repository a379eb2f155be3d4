package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"math-agent-be/internal/entity"
	"math-agent-be/internal/repository/specification"
	"math-agent-be/internal/repository/unitofwork"
	"math-agent-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
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

	assert.NotNil(t, uow.InteractionRepository())
	assert.NotNil(t, uow.FeedbackRepository())
	assert.NotNil(t, uow.KnowledgeEntryRepository())
	assert.NotNil(t, uow.KnowledgeEmbeddingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Interaction Repository", func(t *testing.T) {
		count, err := uow.InteractionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Interaction count: %d", count)
	})

	t.Run("Check Knowledge Embedding Repository", func(t *testing.T) {
		count, err := uow.KnowledgeEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("KnowledgeEmbedding count: %d", count)
	})

	t.Run("Interaction And Feedback Round Trip", func(t *testing.T) {
		ctx := context.Background()
		interactionId := uuid.New()

		interaction := &entity.Interaction{
			Id:       interactionId,
			Question: "integration test question " + interactionId.String(),
			Solution: []string{"step one", "step two"},
			Source:   "knowledge_base",
			WebSearchResults: []entity.WebResultSnapshot{
				{Title: "t", URL: "https://example.com", Snippet: "s", Score: 1.5},
			},
			LlmModel:  "test-model",
			CreatedAt: time.Now(),
		}

		err := uow.InteractionRepository().Create(ctx, interaction)
		assert.NoError(t, err)
		defer uow.InteractionRepository().Delete(ctx, interactionId)

		found, err := uow.InteractionRepository().FindOne(ctx, specification.ByID{ID: interactionId})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, interaction.Question, found.Question)
			assert.Equal(t, []string{"step one", "step two"}, found.Solution)
			assert.Len(t, found.WebSearchResults, 1)
		}

		feedback := &entity.Feedback{
			Id:            uuid.New(),
			InteractionId: interactionId,
			FeedbackType:  "helpful",
			CreatedAt:     time.Now(),
		}
		err = uow.FeedbackRepository().Create(ctx, feedback)
		assert.NoError(t, err)

		all, err := uow.FeedbackRepository().FindAll(ctx, specification.ByInteractionID{InteractionID: interactionId})
		assert.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Knowledge Embedding Similarity Search", func(t *testing.T) {
		ctx := context.Background()

		entry := &entity.KnowledgeEntry{
			Id:        uuid.New(),
			Question:  "integration: what is 1+1",
			Answer:    "2",
			CreatedAt: time.Now(),
		}
		err := uow.KnowledgeEntryRepository().Create(ctx, entry)
		assert.NoError(t, err)
		defer uow.KnowledgeEntryRepository().Delete(ctx, entry.Id)

		vector := make([]float32, 768)
		vector[0] = 1

		embedding := &entity.KnowledgeEmbedding{
			Id:             uuid.New(),
			Document:       "Problem: what is 1+1\nAnswer: 2",
			EmbeddingValue: vector,
			EntryId:        entry.Id,
			CreatedAt:      time.Now(),
		}
		err = uow.KnowledgeEmbeddingRepository().Create(ctx, embedding)
		assert.NoError(t, err)
		defer uow.KnowledgeEmbeddingRepository().Delete(ctx, embedding.Id)

		scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilarWithScore(ctx, vector, 5)
		assert.NoError(t, err)
		if assert.NotEmpty(t, scored) {
			// identical vector scores 1.0
			assert.InDelta(t, 1.0, scored[0].Similarity, 1e-6)
		}
	})
}
