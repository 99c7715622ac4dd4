package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTavilyClientSearch(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"title": "EV Market Report", "url": "https://a.example.com", "content": "evs are growing"},
				{"url": "https://b.example.com"},
				{"title": "No URL entry", "content": "orphan"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewTavilyClient("test-key", 5)
	client.BaseURL = srv.URL

	sources, err := client.Search(context.Background(), "ev charging market")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	if gotBody["api_key"] != "test-key" {
		t.Errorf("request api_key = %v, want test-key", gotBody["api_key"])
	}
	if gotBody["query"] != "ev charging market" {
		t.Errorf("request query = %v", gotBody["query"])
	}
	if gotBody["max_results"] != float64(5) {
		t.Errorf("request max_results = %v, want 5", gotBody["max_results"])
	}

	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(sources))
	}
	if sources[0].Title != "EV Market Report" || sources[0].URL != "https://a.example.com" {
		t.Errorf("sources[0] = %+v", sources[0])
	}
	// Missing title is defaulted; missing url/content come through empty.
	if sources[1].Title != "Untitled" {
		t.Errorf("sources[1].Title = %q, want Untitled", sources[1].Title)
	}
	if sources[2].URL != "" || sources[2].Content != "orphan" {
		t.Errorf("sources[2] = %+v", sources[2])
	}
}

func TestTavilyClientSearchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"Rate limited", http.StatusTooManyRequests, `{"detail": "rate limit"}`},
		{"Server error", http.StatusInternalServerError, "boom"},
		{"Malformed JSON", http.StatusOK, "{not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewTavilyClient("test-key", 5)
			client.BaseURL = srv.URL

			if _, err := client.Search(context.Background(), "q"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTavilyClientEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	client := NewTavilyClient("test-key", 5)
	client.BaseURL = srv.URL

	sources, err := client.Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("got %d sources, want 0", len(sources))
	}
}
