package ollama

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Ollama client.
type Config struct {
	BaseURL string        // default http://localhost:11434; env OLLAMA_API_URL
	Model   string        // e.g. "phi3"
	Timeout time.Duration // http client timeout; a hung generate call fails as oracle timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("OLLAMA_API_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "phi3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
