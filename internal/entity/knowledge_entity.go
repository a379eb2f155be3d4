package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry is one curated math problem with its worked answer.
type KnowledgeEntry struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	Topic     string
	Kind      string // problem type from the source dataset, e.g. "algebra"
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// KnowledgeEmbedding is the vectorized document for a knowledge entry.
type KnowledgeEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	EntryId        uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
