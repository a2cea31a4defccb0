// internal/llm/client_test.go
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	c := New("http://localhost:8080/", "key123", "test-model", 30*time.Second)

	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.baseURL != "http://localhost:8080" {
		t.Errorf("expected trailing slash trimmed, got %s", c.baseURL)
	}
	if c.model != "test-model" {
		t.Errorf("expected model test-model, got %s", c.model)
	}
	if c.httpClient == nil {
		t.Error("httpClient is nil")
	}
}

func TestComplete_Success(t *testing.T) {
	var receivedAuth, receivedBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("expected path /v1/chat/completions, got %s", r.URL.Path)
		}
		receivedAuth = r.Header.Get("Authorization")

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(req.Messages))
		}
		receivedBody = req.Messages[0].Content

		_ = json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{{Message: chatMessage{Role: "assistant", Content: "Great form overall!"}}},
		})
	}))
	defer server.Close()

	c := New(server.URL, "secret", "test-model", 5*time.Second)
	text, err := c.Complete(context.Background(), "describe the pose")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if text != "Great form overall!" {
		t.Errorf("unexpected response text: %q", text)
	}
	if receivedAuth != "Bearer secret" {
		t.Errorf("expected bearer auth, got %q", receivedAuth)
	}
	if receivedBody != "describe the pose" {
		t.Errorf("prompt not forwarded verbatim, got %q", receivedBody)
	}
}

func TestComplete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, "", "test-model", 5*time.Second)
	if _, err := c.Complete(context.Background(), "prompt"); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestComplete_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL, "", "test-model", 5*time.Second)
	if _, err := c.Complete(context.Background(), "prompt"); err == nil {
		t.Error("expected error for malformed response body")
	}
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c := New(server.URL, "", "test-model", 5*time.Second)
	if _, err := c.Complete(context.Background(), "prompt"); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestComplete_ServerDown(t *testing.T) {
	c := New("http://localhost:59998", "", "test-model", time.Second) // unlikely to be listening
	if _, err := c.Complete(context.Background(), "prompt"); err == nil {
		t.Error("expected error for unreachable server")
	}
}
