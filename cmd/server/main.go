package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/marketintel/researcher/pkg/clients"
	"github.com/marketintel/researcher/pkg/config"
	"github.com/marketintel/researcher/pkg/research"
	"github.com/marketintel/researcher/pkg/search"
	"github.com/marketintel/researcher/pkg/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.TavilyApiKey == "" {
		log.Fatal("TAVILY_API_KEY is not set")
	}

	llm, err := clients.OpenAI(clients.DefaultModel)
	if err != nil {
		log.Fatalf("Failed to init LLM client: %v", err)
	}

	searcher := search.NewTavilyClient(cfg.TavilyApiKey, cfg.SearchMaxResults)

	researchCfg := research.Config{
		QueryModel:        cfg.QueryModel,
		ResearchModel:     cfg.ResearchModel,
		MaxQueryLength:    cfg.MaxQueryLength,
		MaxRetries:        cfg.MaxRetries,
		DelayBetweenCalls: cfg.DelayBetweenCalls,
		MaxIterations:     cfg.MaxIterations,
		MaxContentChars:   cfg.MaxContentChars,
	}

	svc := server.NewService(researchCfg, llm, searcher)
	handler := server.NewHandler(svc)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(r)

	fmt.Printf("Server starting on port %s\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
