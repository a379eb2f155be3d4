package evidence

// KBCandidate is a knowledge base entry paired with its similarity score.
type KBCandidate struct {
	Question   string
	Answer     string
	Topic      string
	Similarity float64
}

// WebResult is a single search hit, scored by the ranker.
type WebResult struct {
	Title   string
	URL     string
	Snippet string
	Score   float64
}
