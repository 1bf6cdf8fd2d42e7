package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Complete implements llm.Completer against Ollama's /api/generate
// endpoint. The adapter does not retry and does not inspect content; any
// transport or non-2xx failure surfaces as oracle-unavailable, with
// deadline expiry distinguished as oracle-timeout.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteWithModel(ctx, prompt, c.cfg.Model)
}

// CompleteWithModel overrides the configured model for one call.
func (c *Client) CompleteWithModel(ctx context.Context, prompt, model string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", common.NewAppError("ORACLE_ENCODE", "encode generate request", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", common.NewAppError("ORACLE_REQUEST", "build generate request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("llm.complete.start",
		"req_id", rid,
		"model", model,
		"prompt_bytes", len(prompt),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		sentinel := common.ErrOracleUnavailable
		if isTimeout(err) {
			sentinel = common.ErrOracleTimeout
		}
		c.logger.Error("llm.complete.transport_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("ORACLE_TRANSPORT", err.Error(), sentinel)
	}
	defer func(rc io.ReadCloser) {
		if cerr := rc.Close(); cerr != nil {
			c.logger.Warn("llm.complete.body_close_error", "req_id", rid, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		c.logger.Error("llm.complete.status_error",
			"req_id", rid, "status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("ORACLE_STATUS",
			"generate returned status "+resp.Status, common.ErrOracleUnavailable)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Error("llm.complete.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
		)
		return "", common.NewAppError("ORACLE_DECODE", "decode generate response", common.ErrOracleUnavailable)
	}

	c.logger.Info("llm.complete.ok",
		"req_id", rid,
		"response_bytes", len(out.Response),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Response, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
