package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"math-agent-be/internal/dto"
	"math-agent-be/internal/entity"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/internal/repository/unitofwork"
	"math-agent-be/pkg/embedding"
)

type IKnowledgeService interface {
	Add(ctx context.Context, req *dto.AddKnowledgeRequest) (*dto.AddKnowledgeResponse, error)
	Search(ctx context.Context, query string, limit int) ([]dto.SearchKnowledgeResponse, error)
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

// Add stores a knowledge entry and its embedding atomically. The
// embedded document pairs question and answer so retrieval matches on
// either side.
func (s *knowledgeService) Add(ctx context.Context, req *dto.AddKnowledgeRequest) (*dto.AddKnowledgeResponse, error) {
	document := BuildKnowledgeDocument(req.Question, req.Answer)

	embedded, err := s.embeddingProvider.Generate(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		return nil, fmt.Errorf("embed knowledge document: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &entity.KnowledgeEntry{
		Id:        uuid.New(),
		Question:  req.Question,
		Answer:    req.Answer,
		Topic:     req.Topic,
		Kind:      req.Kind,
		CreatedAt: now,
	}
	if err := uow.KnowledgeEntryRepository().Create(ctx, entry); err != nil {
		uow.Rollback()
		return nil, err
	}

	knowledgeEmbedding := &entity.KnowledgeEmbedding{
		Id:             uuid.New(),
		Document:       document,
		EmbeddingValue: embedded.Embedding.Values,
		EntryId:        entry.Id,
		CreatedAt:      now,
	}
	if err := uow.KnowledgeEmbeddingRepository().Create(ctx, knowledgeEmbedding); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("KnowledgeService", "knowledge entry added", map[string]interface{}{
		"entry_id": entry.Id.String(),
		"topic":    req.Topic,
	})

	return &dto.AddKnowledgeResponse{Id: entry.Id}, nil
}

func (s *knowledgeService) Search(ctx context.Context, query string, limit int) ([]dto.SearchKnowledgeResponse, error) {
	if limit <= 0 {
		limit = 5
	}

	embedded, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilarWithScore(ctx, embedded.Embedding.Values, limit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SearchKnowledgeResponse, 0, len(scored))
	for _, hit := range scored {
		results = append(results, dto.SearchKnowledgeResponse{
			Document:   hit.Embedding.Document,
			Similarity: hit.Similarity,
		})
	}

	return results, nil
}

// BuildKnowledgeDocument is the canonical document layout stored in the
// vector column.
func BuildKnowledgeDocument(question, answer string) string {
	return fmt.Sprintf("Problem: %s\nAnswer: %s", question, answer)
}
