package completion_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ai-blog-api/internal/completion"
)

func newTestClient(url string) *completion.Client {
	return completion.NewClientWithConfig(completion.Config{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "gpt-3.5-turbo",
		Timeout: 5 * time.Second,
	})
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "generated text"}},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	got, err := client.Complete(context.Background(), completion.Request{
		System:      "You are a writer.",
		Prompt:      "Write something.",
		MaxTokens:   100,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "generated text" {
		t.Errorf("Expected 'generated text', got %q", got)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Expected bearer auth header, got %q", gotAuth)
	}
	if gotBody["model"] != "gpt-3.5-turbo" {
		t.Errorf("Expected model in request, got %v", gotBody["model"])
	}
	msgs := gotBody["messages"].([]interface{})
	if len(msgs) != 2 {
		t.Fatalf("Expected system+user messages, got %d", len(msgs))
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Complete(context.Background(), completion.Request{Prompt: "x"})
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}

	var upstream *completion.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", upstream.StatusCode)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Complete(context.Background(), completion.Request{Prompt: "x"})

	var upstream *completion.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected UpstreamError for empty choices, got %v", err)
	}
}

func TestCompleteSingleAttempt(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	client.Complete(context.Background(), completion.Request{Prompt: "x"})

	if calls != 1 {
		t.Errorf("Expected exactly one attempt, got %d", calls)
	}
}

func TestCompleteMissingAPIKey(t *testing.T) {
	client := completion.NewClient("")
	_, err := client.Complete(context.Background(), completion.Request{Prompt: "x"})
	if err == nil {
		t.Fatal("Expected error when API key is empty")
	}
}
