package constant

const (
	// SourceKnowledgeBase tags solutions synthesized from KB evidence.
	SourceKnowledgeBase = "knowledge_base"
	// SourceWebSearch tags solutions synthesized from extracted web content.
	SourceWebSearch = "web_search"
	// SourceWebSearchFailed tags honest "cannot answer" results.
	SourceWebSearchFailed = "web_search_failed"
	// SourceError tags results produced by the top-level failure path.
	SourceError = "error"
)

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"
)

const (
	// RecordInteractionTopic is the in-process topic the router publishes
	// finished interactions to. The recorder service consumes it.
	RecordInteractionTopic = "RECORD_INTERACTION"

	// FeedbackEventType is published to the event bus when feedback lands.
	FeedbackEventType = "FEEDBACK_SUBMITTED"
)

const (
	// ApologyInsufficientEvidence replaces the step list when the model
	// self-reports that the web evidence did not cover the question.
	ApologyInsufficientEvidence = "I'm sorry, but I don't have enough information to provide a complete solution to this problem."

	// ApologySynthesisFailure is the canned single step for model-call failures.
	ApologySynthesisFailure = "I'm sorry, but I cannot provide a solution to this math problem at this time."

	// ApologyInternalError is safe to show when something unexpected broke.
	ApologyInternalError = "I'm sorry, but an error occurred while processing your question. Please try again later."
)
