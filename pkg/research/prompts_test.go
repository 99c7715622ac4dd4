package research

import (
	"strings"
	"testing"
)

func TestParseGaps(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"Bulleted list with blank line",
			"- Gap one\n- Gap two\n\n- Gap three",
			[]string{"Gap one", "Gap two", "Gap three"},
		},
		{
			"Asterisk bullets",
			"* Missing pricing data\n* No regional split",
			[]string{"Missing pricing data", "No regional split"},
		},
		{
			"Unicode bullets and indentation",
			"  • First\n\t• Second",
			[]string{"First", "Second"},
		},
		{
			"Plain lines without bullets",
			"One\nTwo",
			[]string{"One", "Two"},
		},
		{
			"More than three gaps accepted",
			"- a\n- b\n- c\n- d",
			[]string{"a", "b", "c", "d"},
		},
		{"Only whitespace", "   \n\n \t", nil},
		{"Empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGaps(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseGaps(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("gap[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"Shorter than limit", "abc", 10, "abc"},
		{"Exactly at limit", "abcde", 5, "abcde"},
		{"Cut at limit", "abcdef", 3, "abc"},
		{"Multibyte safe", "héllo wörld", 5, "héllo"},
		{"Zero limit", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.n); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestBuildInitialQueryPrompt(t *testing.T) {
	full := Request{
		Domain:         "EV charging",
		CompanyName:    "ChargePoint",
		Metrics:        []string{"market share", "growth rate"},
		CustomOperator: "SWOT analysis",
	}

	prompt := buildInitialQueryPrompt(full, 400)
	for _, want := range []string{
		"market research about: EV charging",
		"focusing on company: ChargePoint",
		"analyzing metrics: market share, growth rate",
		"using analysis method: SWOT analysis",
		"under 400 characters",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	bare := buildInitialQueryPrompt(Request{Domain: "EV charging"}, 400)
	for _, absent := range []string{"focusing on company", "analyzing metrics", "using analysis method"} {
		if strings.Contains(bare, absent) {
			t.Errorf("prompt for bare request should not mention %q:\n%s", absent, bare)
		}
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	sources := []Source{
		{Title: "Report", URL: "https://a.example.com", Content: strings.Repeat("x", 3000)},
		{Title: "News", URL: "https://b.example.com", Content: "short"},
	}

	prompt := buildSummaryPrompt(sources, "EV charging", []string{"market share"}, 2000)

	if !strings.Contains(prompt, "Source 1: Report") || !strings.Contains(prompt, "Source 2: News") {
		t.Errorf("prompt missing numbered source digests:\n%s", prompt)
	}
	if !strings.Contains(prompt, "focusing on market share") {
		t.Errorf("prompt missing metrics context")
	}
	if strings.Contains(prompt, strings.Repeat("x", 2001)) {
		t.Errorf("source content was not truncated to the configured budget")
	}
	if !strings.Contains(prompt, strings.Repeat("x", 2000)+"...") {
		t.Errorf("truncated content should end with an ellipsis marker")
	}
}

func TestBuildRefinementQueryPrompt(t *testing.T) {
	prompt := buildRefinementQueryPrompt("EV charging", "prior summary", []string{"gap A", "gap B"}, 400)

	for _, want := range []string{"knowledge gaps about EV charging", "prior summary", "gap A, gap B", "under 400 characters"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
