package research

import (
	"fmt"
	"strings"
)

func buildInitialQueryPrompt(req Request, maxQueryLength int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a comprehensive web search query for market research about: %s\n", req.Domain)
	if req.CompanyName != "" {
		fmt.Fprintf(&b, "focusing on company: %s\n", req.CompanyName)
	}
	if len(req.Metrics) > 0 {
		fmt.Fprintf(&b, "analyzing metrics: %s\n", strings.Join(req.Metrics, ", "))
	}
	if req.CustomOperator != "" {
		fmt.Fprintf(&b, "using analysis method: %s\n", req.CustomOperator)
	}

	fmt.Fprintf(&b, `
The query should:
- Be specific enough to get relevant results
- Include important industry keywords
- Cover both broad trends and specific details
- Be under %d characters`, maxQueryLength)

	return b.String()
}

func buildRefinementQueryPrompt(domain, previousSummary string, gaps []string, maxQueryLength int) string {
	return fmt.Sprintf(`Based on the following research summary and identified knowledge gaps about %s,
create a refined web search query that specifically addresses these gaps:

Previous Summary:
%s

Knowledge Gaps:
%s

The new query should:
- Target the missing information specifically
- Use precise terminology
- Be under %d characters`, domain, previousSummary, strings.Join(gaps, ", "), maxQueryLength)
}

func buildGapsPrompt(domain, summary string) string {
	return fmt.Sprintf(`Analyze this market research summary about %s and identify the 3 most important
knowledge gaps or unanswered questions that would improve the research quality.

Focus on:
- Missing data points
- Unclear trends
- Lack of specific examples
- Areas needing more depth

Summary:
%s

Return only a bulleted list of the key gaps, nothing else.`, domain, summary)
}

func buildSummaryPrompt(sources []Source, domain string, metrics []string, maxContentChars int) string {
	digests := make([]string, 0, len(sources))
	for i, s := range sources {
		digests = append(digests, fmt.Sprintf("Source %d: %s\nURL: %s\nContent: %s...",
			i+1, s.Title, s.URL, truncate(s.Content, maxContentChars)))
	}

	metricsContext := ""
	if len(metrics) > 0 {
		metricsContext = fmt.Sprintf(" focusing on %s", strings.Join(metrics, ", "))
	}

	return fmt.Sprintf(`Synthesize a comprehensive summary from these search results about %s%s:

%s

Include:
1. Key findings and statistics
2. Trends and patterns
3. Conflicting information
4. Notable missing information

Organize the summary clearly with headings.`, domain, metricsContext, strings.Join(digests, "\n\n"))
}

// parseGaps splits an LLM gap listing into individual gaps. The model is
// asked for a bulleted list of 3, but whatever line count comes back is
// accepted as-is.
func parseGaps(text string) []string {
	var gaps []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		if line == "" {
			continue
		}
		gaps = append(gaps, line)
	}
	return gaps
}

// truncate cuts s to at most n runes so oversized page content does not
// blow the LLM input limit.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
