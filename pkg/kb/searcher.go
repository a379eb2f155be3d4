package kb

import (
	"context"
	"fmt"

	"math-agent-be/internal/repository/contract"
	"math-agent-be/pkg/agent/evidence"
	"math-agent-be/pkg/embedding"
)

// Searcher answers "does the knowledge base cover this question" by
// embedding the query and scoring stored documents with cosine
// similarity.
type Searcher struct {
	embedder   embedding.EmbeddingProvider
	embeddings contract.KnowledgeEmbeddingRepository
	Threshold  float64
	Limit      int
}

func NewSearcher(embedder embedding.EmbeddingProvider, embeddings contract.KnowledgeEmbeddingRepository, threshold float64, limit int) *Searcher {
	if threshold <= 0 {
		threshold = 0.70
	}
	if limit <= 0 {
		limit = 5
	}
	return &Searcher{
		embedder:   embedder,
		embeddings: embeddings,
		Threshold:  threshold,
		Limit:      limit,
	}
}

// Search returns the nearest stored documents along with a flag telling
// whether at least one of them scored above the threshold. All retrieved
// candidates are returned either way so a single strong match still
// brings its weaker neighbours as supporting context.
func (s *Searcher) Search(ctx context.Context, question string) ([]evidence.KBCandidate, bool, error) {
	embedded, err := s.embedder.Generate(question, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, false, fmt.Errorf("embed query: %w", err)
	}

	scored, err := s.embeddings.SearchSimilarWithScore(ctx, embedded.Embedding.Values, s.Limit)
	if err != nil {
		return nil, false, fmt.Errorf("similarity search: %w", err)
	}

	candidates := make([]evidence.KBCandidate, 0, len(scored))
	foundGoodMatch := false
	for _, hit := range scored {
		if hit.Similarity > s.Threshold {
			foundGoodMatch = true
		}
		candidates = append(candidates, evidence.KBCandidate{
			Answer:     hit.Embedding.Document,
			Similarity: hit.Similarity,
		})
	}

	return candidates, foundGoodMatch, nil
}
