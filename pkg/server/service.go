package server

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/marketintel/researcher/pkg/research"
)

// Service runs research runs on behalf of HTTP requests. Each request
// gets its own engine, so concurrent runs share nothing but the
// collaborator clients.
type Service struct {
	Cfg      research.Config
	LLM      llms.Model
	Searcher research.Searcher
	Logger   *slog.Logger
}

func NewService(cfg research.Config, llm llms.Model, searcher research.Searcher) *Service {
	return &Service{
		Cfg:      cfg,
		LLM:      llm,
		Searcher: searcher,
		Logger:   slog.Default(),
	}
}

func (s *Service) RunResearch(ctx context.Context, req research.Request) (*research.Result, error) {
	engine := research.NewEngine(s.Cfg, s.LLM, s.Searcher)
	engine.Logger = s.Logger
	return engine.Run(ctx, req)
}
