package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/marketintel/researcher/pkg/clients"
	"github.com/marketintel/researcher/pkg/config"
	"github.com/marketintel/researcher/pkg/report"
	"github.com/marketintel/researcher/pkg/research"
	"github.com/marketintel/researcher/pkg/search"
)

var (
	domain         string
	companyName    string
	metricsInput   string
	customOperator string
	outputFile     string
)

func main() {
	handler := slog.NewTextHandler(os.Stdout, nil)
	slog.SetDefault(slog.New(handler))

	// It's okay if .env doesn't exist, as long as env vars are set
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "researcher",
		Short: "Iterative market research from the terminal",
		Long:  `Researcher runs iterative market research: it generates a search query, gathers web sources, summarizes them, identifies knowledge gaps, and refines the query over several iterations before writing a final report.`,
		Run: func(cmd *cobra.Command, args []string) {
			if !cmd.Flags().Changed("domain") {
				promptForInput()
			}
			if domain == "" {
				slog.Error("Domain cannot be empty")
				os.Exit(1)
			}

			cfg := config.Load()
			if cfg.TavilyApiKey == "" {
				slog.Error("TAVILY_API_KEY is not set")
				os.Exit(1)
			}

			llm, err := clients.OpenAI(clients.DefaultModel)
			if err != nil {
				slog.Error("Failed to init LLM client", "error", err)
				os.Exit(1)
			}

			engine := research.NewEngine(research.Config{
				QueryModel:        cfg.QueryModel,
				ResearchModel:     cfg.ResearchModel,
				MaxQueryLength:    cfg.MaxQueryLength,
				MaxRetries:        cfg.MaxRetries,
				DelayBetweenCalls: cfg.DelayBetweenCalls,
				MaxIterations:     cfg.MaxIterations,
				MaxContentChars:   cfg.MaxContentChars,
			}, llm, search.NewTavilyClient(cfg.TavilyApiKey, cfg.SearchMaxResults))

			req := research.Request{
				Domain:         domain,
				CompanyName:    companyName,
				CustomOperator: customOperator,
			}
			if metricsInput != "" {
				for _, m := range strings.Split(metricsInput, ",") {
					if m = strings.TrimSpace(m); m != "" {
						req.Metrics = append(req.Metrics, m)
					}
				}
			}

			slog.Info("Starting research", "domain", domain, "company", companyName)

			result, err := engine.Run(context.Background(), req)
			if err != nil {
				slog.Error("Research failed", "error", err)
				os.Exit(1)
			}

			report.PrintSummary(os.Stdout, result)

			filename, err := report.Save(result, outputFile)
			if err != nil {
				slog.Error("Failed to save report", "error", err)
				os.Exit(1)
			}
			fmt.Printf("\nFull report saved to: %s\n", filename)
		},
	}

	rootCmd.Flags().StringVarP(&domain, "domain", "d", "", "The industry or topic to research")
	rootCmd.Flags().StringVarP(&companyName, "company", "c", "", "Specific company to focus on")
	rootCmd.Flags().StringVarP(&metricsInput, "metrics", "m", "", "Comma-separated metrics to analyze")
	rootCmd.Flags().StringVarP(&customOperator, "operator", "p", "", "Analysis method, e.g. SWOT")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Report filename (default: timestamped)")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}

func promptForInput() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter the domain to research: ")
	input, _ := reader.ReadString('\n')
	domain = strings.TrimSpace(input)

	fmt.Print("Enter the company name (optional): ")
	input, _ = reader.ReadString('\n')
	companyName = strings.TrimSpace(input)

	fmt.Print("Enter metrics to analyze, separated by commas (optional): ")
	input, _ = reader.ReadString('\n')
	metricsInput = strings.TrimSpace(input)

	fmt.Print("Enter a custom analysis operator (optional): ")
	input, _ = reader.ReadString('\n')
	customOperator = strings.TrimSpace(input)
}
