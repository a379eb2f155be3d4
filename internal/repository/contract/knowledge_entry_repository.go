package contract

import (
	"context"

	"math-agent-be/internal/entity"
	"math-agent-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeEntryRepository interface {
	Create(ctx context.Context, entry *entity.KnowledgeEntry) error
	Update(ctx context.Context, entry *entity.KnowledgeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
