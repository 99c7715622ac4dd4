package clients

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/llms/openai"
)

// ModelType is an enum for the supported OpenAI models.
type ModelType string

const (
	// DefaultModel is used when no model is specified.
	DefaultModel ModelType = "gpt-4o"
	MiniModel    ModelType = "gpt-4o-mini"
)

func OpenAI(model ModelType) (*openai.LLM, error) {
	// The .env file is optional as long as the variables are exported.
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	var modelName string
	switch model {
	case DefaultModel:
		modelName = string(DefaultModel)
	case MiniModel:
		modelName = string(MiniModel)
	default:
		return nil, fmt.Errorf("invalid model type: %s", model)
	}

	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(modelName))
	if err != nil {
		return nil, err
	}

	return llm, nil
}
