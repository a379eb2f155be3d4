package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"math-agent-be/internal/dto"
	"math-agent-be/internal/entity"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/internal/repository/unitofwork"
	"math-agent-be/pkg/agent/router"
)

// InteractionRecorder implements the routing pipeline's recorder hook by
// publishing records onto the in-process bus. Publishing failures are
// logged and swallowed so the response path is never blocked.
type InteractionRecorder struct {
	publisher IPublisherService
	logger    logger.ILogger
}

var _ router.Recorder = &InteractionRecorder{}

func NewInteractionRecorder(publisher IPublisherService, log logger.ILogger) *InteractionRecorder {
	return &InteractionRecorder{
		publisher: publisher,
		logger:    log,
	}
}

func (r *InteractionRecorder) Record(record *router.InteractionRecord) {
	msg := dto.RecordInteractionMessage{
		InteractionId:  record.InteractionId,
		Question:       record.Question,
		Solution:       record.Steps,
		Source:         record.Source,
		KbQuery:        record.KbQuery,
		WebSearchQuery: record.WebSearchQuery,
		ContextUsed:    record.ContextUsed,
		LlmModel:       record.LlmModel,
	}
	for _, result := range record.WebSearchResults {
		msg.WebSearchResults = append(msg.WebSearchResults, entity.WebResultSnapshot{
			Title:   result.Title,
			URL:     result.URL,
			Snippet: result.Snippet,
			Score:   result.Score,
		})
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		r.logger.Error("InteractionRecorder", "failed to marshal interaction record", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := r.publisher.Publish(context.Background(), payload); err != nil {
		r.logger.Error("InteractionRecorder", "failed to publish interaction record", map[string]interface{}{
			"interaction_id": record.InteractionId.String(),
			"error":          err.Error(),
		})
	}
}

type IRecorderService interface {
	Consume(ctx context.Context) error
}

// recorderService drains the interaction topic and persists each record.
type recorderService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewRecorderService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IRecorderService {
	return &recorderService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (rs *recorderService) Consume(ctx context.Context) error {
	messages, err := rs.pubSub.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			rs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (rs *recorderService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecordInteractionMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction record: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := rs.uowFactory.NewUnitOfWork(ctx)

	interaction := &entity.Interaction{
		Id:               payload.InteractionId,
		Question:         payload.Question,
		Solution:         payload.Solution,
		Source:           payload.Source,
		KbQuery:          payload.KbQuery,
		WebSearchQuery:   payload.WebSearchQuery,
		WebSearchResults: payload.WebSearchResults,
		ContextUsed:      payload.ContextUsed,
		LlmModel:         payload.LlmModel,
		CreatedAt:        time.Now(),
	}

	if err := uow.InteractionRepository().Create(ctx, interaction); err != nil {
		log.Printf("[ERROR] Failed to persist interaction %s: %v", payload.InteractionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	log.Printf("[INFO] Stored interaction %s (source: %s)", payload.InteractionId, payload.Source)
	msg.Ack()
}
