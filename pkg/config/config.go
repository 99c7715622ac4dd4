package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration for a research run and the server.
type Config struct {
	OpenAIApiKey      string
	TavilyApiKey      string
	QueryModel        string
	ResearchModel     string
	Port              string
	MaxQueryLength    int
	MaxRetries        int
	DelayBetweenCalls time.Duration
	MaxIterations     int
	MaxContentChars   int
	SearchMaxResults  int
}

func Load() *Config {
	return &Config{
		OpenAIApiKey:      getEnv("OPENAI_API_KEY", ""),
		TavilyApiKey:      getEnv("TAVILY_API_KEY", ""),
		QueryModel:        getEnv("QUERY_GENERATION_MODEL", "gpt-4o"),
		ResearchModel:     getEnv("DEEP_RESEARCH_MODEL", "gpt-4o"),
		Port:              getEnv("PORT", "8000"),
		MaxQueryLength:    getEnvAsInt("MAX_QUERY_LENGTH", 400),
		MaxRetries:        getEnvAsInt("MAX_RETRIES", 3),
		DelayBetweenCalls: time.Duration(getEnvAsInt("DELAY_BETWEEN_REQUESTS", 2)) * time.Second,
		MaxIterations:     getEnvAsInt("MAX_ITERATIONS", 3),
		MaxContentChars:   getEnvAsInt("MAX_CONTENT_CHARS", 2000),
		SearchMaxResults:  getEnvAsInt("SEARCH_MAX_RESULTS", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
