package research

import (
	"time"

	"github.com/google/uuid"
)

// Config holds the tunables for a research run.
type Config struct {
	QueryModel        string
	ResearchModel     string
	MaxQueryLength    int
	MaxRetries        int
	DelayBetweenCalls time.Duration
	MaxIterations     int
	MaxContentChars   int
}

// Source is a single web search result. Missing fields are defaulted when
// the result is ingested, so downstream code never re-checks them.
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// IterationRecord captures one pass of the research loop. KnowledgeGaps is
// empty on the final iteration.
type IterationRecord struct {
	Iteration     int      `json:"iteration"`
	Query         string   `json:"query"`
	SourcesFound  int      `json:"sources_found"`
	Summary       string   `json:"summary"`
	KnowledgeGaps []string `json:"knowledge_gaps"`
}

// Request describes what to research.
type Request struct {
	Domain         string   `json:"domain" binding:"required"`
	CompanyName    string   `json:"company_name,omitempty"`
	Metrics        []string `json:"metrics,omitempty"`
	CustomOperator string   `json:"custom_operator,omitempty"`
}

// Result is the finished research run.
type Result struct {
	RunID         uuid.UUID         `json:"run_id"`
	FinalAnalysis string            `json:"final_analysis"`
	Iterations    []IterationRecord `json:"iterations"`
	AllSources    []Source          `json:"all_sources"`
}
