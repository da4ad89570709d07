// Package normalize rewrites exotic free-text duration answers into a form
// the local parser understands, by asking a messages-style completion API.
// The client is optional: the grading pipeline works without it, and callers
// fall back to the raw text whenever Normalize returns an error.
package normalize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const prompt = `Convert this free-text answer about a dog-training target duration into a canonical duration.

Answer: %q

Reply with exactly one line and nothing else:
- the duration as "M:SS" or "N seconds"
- the single word DOOR if the answer chooses the Door is a Bore protocol instead of a duration
- the single word INVALID if no duration can be determined`

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	// Timeout bounds each Normalize call. Zero means 10 seconds.
	Timeout time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Normalize asks the API to canonicalize raw. A reply of INVALID, or any
// transport or decoding failure, returns an error so the caller keeps the
// original text. DOOR replies pass through; the parser knows the keyword.
func (c *Client) Normalize(ctx context.Context, raw string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, _ := json.Marshal(messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: 50,
		Messages:  []message{{Role: "user", Content: fmt.Sprintf(prompt, raw)}},
	})
	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode/100 != 2 {
		return "", fmt.Errorf("normalize: %s", res.Status)
	}

	var mr messagesResponse
	if err := json.NewDecoder(res.Body).Decode(&mr); err != nil {
		return "", err
	}
	if len(mr.Content) == 0 {
		return "", fmt.Errorf("normalize: empty reply")
	}
	reply := strings.TrimSpace(mr.Content[0].Text)
	if reply == "" || strings.EqualFold(reply, "INVALID") {
		return "", fmt.Errorf("normalize: no duration in %q", raw)
	}
	return reply, nil
}
