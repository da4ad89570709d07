package normalize

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"})
}

func reply(w http.ResponseWriter, text string) {
	json.NewEncoder(w).Encode(map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
}

func TestNormalize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" || len(req.Messages) != 1 {
			t.Errorf("unexpected request: %+v", req)
		}
		reply(w, "  15 seconds\n")
	})

	got, err := c.Normalize(context.Background(), "a quarter of a minute")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "15 seconds" {
		t.Fatalf("got %q, want trimmed %q", got, "15 seconds")
	}
}

func TestNormalizeInvalidReply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		reply(w, "INVALID")
	})
	if _, err := c.Normalize(context.Background(), "whenever she's ready"); err == nil {
		t.Fatalf("expected an error for an INVALID reply")
	}
}

func TestNormalizeServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})
	if _, err := c.Normalize(context.Background(), "15 secs"); err == nil {
		t.Fatalf("expected an error on a 5xx response")
	}
}

func TestNormalizeMalformedReply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	if _, err := c.Normalize(context.Background(), "15 secs"); err == nil {
		t.Fatalf("expected an error on a malformed body")
	}
}

func TestNormalizeEmptyContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	})
	if _, err := c.Normalize(context.Background(), "15 secs"); err == nil {
		t.Fatalf("expected an error on an empty content list")
	}
}

func TestNormalizeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can observe the client disconnect;
		// with an unread request body the context is never cancelled and
		// Close would wait on this handler forever.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	if _, err := c.Normalize(context.Background(), "15 secs"); err == nil {
		t.Fatalf("expected a timeout error")
	}
}
