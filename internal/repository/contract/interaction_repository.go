package contract

import (
	"context"

	"math-agent-be/internal/entity"
	"math-agent-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SourceCount is one row of the source-distribution aggregate.
type SourceCount struct {
	Source string
	Count  int64
}

type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// CountBySource aggregates interactions per source tag for feedback analysis.
	CountBySource(ctx context.Context) ([]SourceCount, error)
}
