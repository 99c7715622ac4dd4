package research

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// ErrNoSources reports that the first iteration produced no sources at
// all, so no report is possible. The HTTP layer maps it to a client error.
var ErrNoSources = errors.New("no relevant sources found")

// Searcher is the web search collaborator.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Source, error)
}

// Engine drives the iterative research loop: generate a query, search,
// deduplicate, summarize, identify knowledge gaps, refine the query, and
// after the last iteration synthesize a final analysis over every
// accumulated source.
type Engine struct {
	Config   Config
	LLM      llms.Model
	Searcher Searcher
	Logger   *slog.Logger
}

func NewEngine(cfg Config, llm llms.Model, searcher Searcher) *Engine {
	return &Engine{
		Config:   cfg,
		LLM:      llm,
		Searcher: searcher,
		Logger:   slog.Default(),
	}
}

// Run executes a full research run. First-iteration failures abort the
// run; failures on later iterations terminate the loop early and the
// final analysis is built from whatever was accumulated.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	runID := uuid.New()
	logger := e.Logger.With("run_id", runID, "domain", req.Domain)
	logger.Info("Starting research run", "max_iterations", e.Config.MaxIterations)

	query, err := e.generateInitialQuery(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("initial query generation failed: %w", err)
	}
	logger.Info("Generated initial query", "query", query)

	var accumulated []Source
	iterations := make([]IterationRecord, 0, e.Config.MaxIterations)

	for k := 1; k <= e.Config.MaxIterations; k++ {
		logger.Info("Starting iteration", "iteration", k, "query", query)

		sources, err := e.searchWithRetry(ctx, query)
		if err != nil {
			if k == 1 {
				return nil, fmt.Errorf("search failed on first iteration: %w", err)
			}
			logger.Warn("Search failed, finalizing with accumulated sources", "iteration", k, "error", err)
			break
		}
		if len(sources) == 0 {
			if k == 1 {
				return nil, ErrNoSources
			}
			logger.Info("No new sources found, finalizing early", "iteration", k)
			break
		}

		accumulated = MergeSources(accumulated, sources)
		logger.Info("Collected sources", "iteration", k, "found", len(sources), "accumulated", len(accumulated))

		summary, err := e.summarize(ctx, sources, req.Domain, req.Metrics)
		if err != nil {
			if k == 1 {
				return nil, fmt.Errorf("summarization failed on first iteration: %w", err)
			}
			logger.Warn("Summarization failed, finalizing with accumulated sources", "iteration", k, "error", err)
			break
		}

		gaps := []string{}
		if k < e.Config.MaxIterations {
			found, err := e.identifyGaps(ctx, req.Domain, summary)
			if err != nil {
				if k == 1 {
					return nil, fmt.Errorf("gap analysis failed on first iteration: %w", err)
				}
				logger.Warn("Gap analysis failed, finalizing with accumulated sources", "iteration", k, "error", err)
				break
			}
			gaps = append(gaps, found...)
		}

		iterations = append(iterations, IterationRecord{
			Iteration:     k,
			Query:         query,
			SourcesFound:  len(sources),
			Summary:       summary,
			KnowledgeGaps: gaps,
		})

		// An empty gap list leaves the next query unchanged.
		if k < e.Config.MaxIterations && len(gaps) > 0 {
			logger.Info("Identified knowledge gaps", "iteration", k, "gaps", gaps)
			refined, err := e.generateRefinementQuery(ctx, req.Domain, summary, gaps)
			if err != nil {
				if k == 1 {
					return nil, fmt.Errorf("query refinement failed on first iteration: %w", err)
				}
				logger.Warn("Query refinement failed, finalizing with accumulated sources", "iteration", k, "error", err)
				break
			}
			query = refined
		}
	}

	logger.Info("Finalizing", "iterations", len(iterations), "total_sources", len(accumulated))

	finalAnalysis, err := e.summarize(ctx, accumulated, req.Domain, req.Metrics)
	if err != nil {
		return nil, fmt.Errorf("final synthesis failed: %w", err)
	}

	return &Result{
		RunID:         runID,
		FinalAnalysis: finalAnalysis,
		Iterations:    iterations,
		AllSources:    accumulated,
	}, nil
}

// searchWithRetry attempts the search up to MaxRetries times, sleeping a
// fixed delay between attempts. Every failure is treated the same; the
// last one is returned once retries are exhausted.
func (e *Engine) searchWithRetry(ctx context.Context, query string) ([]Source, error) {
	var lastErr error

	for attempt := 1; attempt <= e.Config.MaxRetries; attempt++ {
		sources, err := e.Searcher.Search(ctx, query)
		if err == nil {
			return sources, nil
		}
		lastErr = err

		if attempt < e.Config.MaxRetries {
			e.Logger.Warn("Search attempt failed, retrying", "attempt", attempt, "error", err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(e.Config.DelayBetweenCalls):
			}
		}
	}

	return nil, fmt.Errorf("search failed after %d attempts: %w", e.Config.MaxRetries, lastErr)
}

func (e *Engine) generateInitialQuery(ctx context.Context, req Request) (string, error) {
	prompt := buildInitialQueryPrompt(req, e.Config.MaxQueryLength)
	return e.generate(ctx, prompt, e.Config.QueryModel, 0.4, 200)
}

func (e *Engine) generateRefinementQuery(ctx context.Context, domain, previousSummary string, gaps []string) (string, error) {
	prompt := buildRefinementQueryPrompt(domain, previousSummary, gaps, e.Config.MaxQueryLength)
	// Slightly more creative for gap filling.
	return e.generate(ctx, prompt, e.Config.QueryModel, 0.5, 200)
}

func (e *Engine) identifyGaps(ctx context.Context, domain, summary string) ([]string, error) {
	prompt := buildGapsPrompt(domain, summary)
	text, err := e.generate(ctx, prompt, e.Config.ResearchModel, 0.3, 200)
	if err != nil {
		return nil, err
	}
	return parseGaps(text), nil
}

func (e *Engine) summarize(ctx context.Context, sources []Source, domain string, metrics []string) (string, error) {
	prompt := buildSummaryPrompt(sources, domain, metrics, e.Config.MaxContentChars)
	return e.generate(ctx, prompt, e.Config.ResearchModel, 0.3, 1000)
}

// generate sends a single-prompt completion request. The response is
// opaque text; only the gap analyzer ever parses it, and tolerantly.
func (e *Engine) generate(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (string, error) {
	resp, err := e.LLM.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		llms.WithModel(model),
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("llm generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
