package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"math-agent-be/internal/config"
	"math-agent-be/internal/dto"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/internal/repository/unitofwork"
	"math-agent-be/internal/service"
	"math-agent-be/pkg/database"
	"math-agent-be/pkg/embedding"

	"github.com/fatih/color"
)

type datasetProblem struct {
	Subject     string `json:"subject"`
	Question    string `json:"question"`
	Type        string `json:"type"`
	Gold        string `json:"gold"`
	Description string `json:"description"`
}

type fewShotExample struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

func main() {
	datasetPath := flag.String("dataset", "data/kb_data/dataset.json", "path to the problems dataset")
	fewShotPath := flag.String("few-shot", "data/kb_data/few_shot_examples.json", "path to few-shot examples (optional)")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	knowledgeService := service.NewKnowledgeService(uowFactory, embeddingProvider, logger.Noop())

	ctx := context.Background()

	color.Cyan("🚀 Seeding math knowledge base\n")

	color.Yellow("\n1. Loading dataset from %s", *datasetPath)
	loaded := seedDataset(ctx, knowledgeService, *datasetPath)
	color.Green("Loaded %d math problems", loaded)

	if _, err := os.Stat(*fewShotPath); err == nil {
		color.Yellow("\n2. Loading few-shot examples from %s", *fewShotPath)
		loaded = seedFewShot(ctx, knowledgeService, *fewShotPath)
		color.Green("Loaded %d few-shot examples", loaded)
	}

	color.Cyan("\n✅ Knowledge base seeding complete")
}

func seedDataset(ctx context.Context, svc service.IKnowledgeService, path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read dataset: %v", err)
		os.Exit(1)
	}

	var problems []datasetProblem
	if err := json.Unmarshal(raw, &problems); err != nil {
		color.Red("Failed to parse dataset: %v", err)
		os.Exit(1)
	}

	loaded := 0
	for _, problem := range problems {
		if problem.Subject != "math" {
			continue
		}

		_, err := svc.Add(ctx, &dto.AddKnowledgeRequest{
			Question: problem.Question,
			Answer:   problem.Gold,
			Topic:    problem.Type,
		})
		if err != nil {
			color.Red("Failed to add problem %q: %v", problem.Question, err)
			continue
		}

		loaded++
		if loaded%25 == 0 {
			color.Green("Added %d problems so far", loaded)
		}
	}

	return loaded
}

func seedFewShot(ctx context.Context, svc service.IKnowledgeService, path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read few-shot examples: %v", err)
		return 0
	}

	var examples map[string]map[string]fewShotExample
	if err := json.Unmarshal(raw, &examples); err != nil {
		color.Red("Failed to parse few-shot examples: %v", err)
		return 0
	}

	mathExamples, ok := examples["math"]
	if !ok {
		color.Yellow("No math examples found, skipping")
		return 0
	}

	loaded := 0
	for exampleType, example := range mathExamples {
		_, err := svc.Add(ctx, &dto.AddKnowledgeRequest{
			Question: example.Problem,
			Answer:   example.Solution,
			Topic:    exampleType,
			Kind:     "few_shot",
		})
		if err != nil {
			color.Red("Failed to add few-shot example %q: %v", exampleType, err)
			continue
		}
		loaded++
	}

	return loaded
}
