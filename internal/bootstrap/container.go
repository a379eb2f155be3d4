package bootstrap

import (
	"context"
	"log"

	"math-agent-be/internal/config"
	"math-agent-be/internal/constant"
	"math-agent-be/internal/controller"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/internal/repository/unitofwork"
	"math-agent-be/internal/service"
	"math-agent-be/pkg/agent/extract"
	"math-agent-be/pkg/agent/router"
	"math-agent-be/pkg/agent/synthesis"
	"math-agent-be/pkg/agent/websearch"
	"math-agent-be/pkg/embedding"
	"math-agent-be/pkg/gateway"
	"math-agent-be/pkg/kb"
	"math-agent-be/pkg/llm/factory"

	pktNats "math-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController     controller.IAgentController
	FeedbackController  controller.IFeedbackController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	RecorderService service.IRecorderService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	providerKey := cfg.Keys.GoogleGemini
	providerBaseURL := cfg.Ai.OllamaBaseURL
	if cfg.Ai.LLMProvider == "openai" {
		providerKey = cfg.Keys.OpenAI
		providerBaseURL = cfg.Ai.OpenAIBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		providerBaseURL,
		providerKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 5. Routing Pipeline
	uow := uowFactory.NewUnitOfWork(context.Background())
	kbSearcher := kb.NewSearcher(
		embeddingProvider,
		uow.KnowledgeEmbeddingRepository(),
		cfg.Agent.KBSimilarityThreshold,
		cfg.Agent.KBResultLimit,
	)
	searchClient := websearch.NewSerperClient(cfg.Keys.Serper)
	contentExtractor := extract.NewContentExtractor(cfg.Agent.WebContentMaxChars, cfg.Agent.ExtractMinChars)
	synthesizer := synthesis.NewSynthesizer(llmProvider)

	publisherService := service.NewPublisherService(constant.RecordInteractionTopic, pubSub)
	recorder := service.NewInteractionRecorder(publisherService, sysLogger)
	recorderService := service.NewRecorderService(pubSub, constant.RecordInteractionTopic, uowFactory)

	agentRouter := router.NewRouter(
		kbSearcher,
		searchClient,
		contentExtractor,
		synthesizer,
		recorder,
		sysLogger,
		cfg.Agent.WebResultLimit,
		cfg.Agent.WebExtractLimit,
	)

	answerGate := gateway.NewGateway(llmProvider)

	// 6. Services
	questionService := service.NewQuestionService(agentRouter, answerGate, rdb, uowFactory, sysLogger)
	feedbackService := service.NewFeedbackService(uowFactory, natsPub, cfg.App.FeedbackLogPath, sysLogger)
	knowledgeService := service.NewKnowledgeService(uowFactory, embeddingProvider, sysLogger)

	// 7. Controllers
	return &Container{
		AgentController:     controller.NewAgentController(questionService),
		FeedbackController:  controller.NewFeedbackController(feedbackService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),
		RecorderService:     recorderService,
	}
}
