package unitofwork

import (
	"context"

	"math-agent-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InteractionRepository() contract.InteractionRepository
	FeedbackRepository() contract.FeedbackRepository
	KnowledgeEntryRepository() contract.KnowledgeEntryRepository
	KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository
}
