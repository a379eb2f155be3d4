package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Agent    AgentConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	FeedbackLogPath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

// AgentConfig holds the routing pipeline knobs.
type AgentConfig struct {
	KBSimilarityThreshold float64
	KBResultLimit         int
	WebResultLimit        int
	WebExtractLimit       int
	WebContentMaxChars    int
	ExtractMinChars       int
}

type APIKeys struct {
	GoogleGemini string
	Serper       string
	OpenAI       string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "ollama", "gemini", "openai"
	LLMModel          string // e.g. "llama3", "gemini-1.5-flash"
	OpenAIBaseURL     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			FeedbackLogPath:    getEnv("FEEDBACK_LOG_PATH", "data/feedback_logs"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Agent: AgentConfig{
			KBSimilarityThreshold: getEnvAsFloat("KB_SIMILARITY_THRESHOLD", 0.70),
			KBResultLimit:         getEnvAsInt("KB_RESULT_LIMIT", 5),
			WebResultLimit:        getEnvAsInt("WEB_RESULT_LIMIT", 5),
			WebExtractLimit:       getEnvAsInt("WEB_EXTRACT_LIMIT", 2),
			WebContentMaxChars:    getEnvAsInt("WEB_CONTENT_MAX_CHARS", 4000),
			ExtractMinChars:       getEnvAsInt("EXTRACT_MIN_CHARS", 100),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Serper:       getEnv("SERPER_API_KEY", ""),
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-1.5-flash"),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
