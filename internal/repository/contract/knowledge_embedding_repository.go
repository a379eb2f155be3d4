package contract

import (
	"context"

	"math-agent-be/internal/entity"
	"math-agent-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredKnowledgeEmbedding wraps KnowledgeEmbedding with its similarity score
type ScoredKnowledgeEmbedding struct {
	Embedding  *entity.KnowledgeEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type KnowledgeEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.KnowledgeEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.KnowledgeEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embeddings with their cosine similarity,
	// ordered best first. The caller applies threshold semantics.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredKnowledgeEmbedding, error)
}
