package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
)

func TestCompleteOK(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Errorf("expected /api/generate, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"response": `{"fund_name":"Alpha"}`})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "phi3"}, nil)
	out, err := c.Complete(context.Background(), "identify the fund")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"fund_name":"Alpha"}` {
		t.Errorf("unexpected response %q", out)
	}
	if gotBody.Model != "phi3" || gotBody.Prompt != "identify the fund" || gotBody.Stream {
		t.Errorf("unexpected request body %+v", gotBody)
	}
}

func TestCompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), "p")
	if !errors.Is(err, common.ErrOracleUnavailable) {
		t.Fatalf("expected oracle unavailable, got %v", err)
	}
}

func TestCompleteConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // listener gone: connection refused

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), "p")
	if !errors.Is(err, common.ErrOracleUnavailable) {
		t.Fatalf("expected oracle unavailable, got %v", err)
	}
}

func TestCompleteTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Complete(ctx, "p")
	if !errors.Is(err, common.ErrOracleTimeout) {
		t.Fatalf("expected oracle timeout, got %v", err)
	}
}

func TestCompleteDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), "p")
	if !errors.Is(err, common.ErrOracleUnavailable) {
		t.Fatalf("expected oracle unavailable on decode failure, got %v", err)
	}
}

func TestCompleteWithModelOverride(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotModel = req.Model
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "ok"})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "phi3"}, nil)
	if _, err := c.CompleteWithModel(context.Background(), "p", "llama3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotModel != "llama3" {
		t.Errorf("model override not sent, got %q", gotModel)
	}
}
