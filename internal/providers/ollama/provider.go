// internal/providers/ollama/provider.go
// Package ollama provides a Generator backed by an Ollama HTTP endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mwiater/localingo/internal/appconfig"
	"github.com/mwiater/localingo/internal/logging"
	"github.com/mwiater/localingo/internal/providers"
)

// Client implements providers.Generator against /api/generate.
type Client struct {
	client  *http.Client
	baseURL string
	model   string
	options map[string]any
}

// New constructs a Client for the configured host and model. The HTTP client
// has no timeout: a stalled generation holds its run until the server answers.
func New(cfg *appconfig.Config) *Client {
	if cfg == nil {
		defaults := appconfig.Defaults()
		cfg = &defaults
	}
	return &Client{
		client: &http.Client{
			Transport: &http.Transport{ForceAttemptHTTP2: false},
		},
		baseURL: cfg.HostURL(),
		model:   cfg.ModelName(),
		options: cfg.Parameters.Options(),
	}
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string { return c.model }

// Host returns the base URL of the Ollama server.
func (c *Client) Host() string { return c.baseURL }

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	TotalDuration   int64  `json:"total_duration"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	EvalDuration    int64  `json:"eval_duration"`
}

// modelsResponse is shared by /api/tags and /api/ps.
type modelsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Generate sends prompt with streaming disabled and returns the trimmed completion.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  false,
		Options: c.options,
	})
	if err != nil {
		return "", err
	}
	logging.LogRequest("APP->LLM", c.baseURL, c.model, providers.StageFromContext(ctx), body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: /api/generate request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read /api/generate response: %w", err)
	}
	logging.LogRequest("LLM->APP", c.baseURL, c.model, providers.StageFromContext(ctx), respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &providers.ServiceError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("ollama: decode /api/generate response: %w", err)
	}

	output := strings.TrimSpace(result.Response)
	if output == "" {
		return "", providers.ErrEmptyResponse
	}
	return output, nil
}

// ListModels returns the models installed on the host.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	return c.fetchModels(ctx, "/api/tags")
}

// LoadedModels returns the models currently loaded in memory on the host.
func (c *Client) LoadedModels(ctx context.Context) ([]string, error) {
	return c.fetchModels(ctx, "/api/ps")
}

func (c *Client) fetchModels(ctx context.Context, path string) ([]string, error) {
	endpoint := c.baseURL + path
	logging.LogRequest("APP->LLM", c.baseURL, "", "", map[string]string{"method": http.MethodGet, "url": endpoint})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama: %s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	logging.LogRequest("LLM->APP", c.baseURL, "", "", body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama: %s returned %s: %s", path, resp.Status, strings.TrimSpace(string(body)))
	}

	var models modelsResponse
	if err := json.Unmarshal(body, &models); err != nil {
		return nil, fmt.Errorf("ollama: decode %s response: %w", path, err)
	}

	names := make([]string, len(models.Models))
	for i, m := range models.Models {
		names[i] = m.Name
	}
	return names, nil
}

// PullModel downloads model onto the host and blocks until the pull finishes.
func (c *Client) PullModel(ctx context.Context, model string) error {
	return c.postAdmin(ctx, "/api/pull", map[string]any{"name": model, "stream": false})
}

// UnloadModel asks the host to evict model from memory immediately.
func (c *Client) UnloadModel(ctx context.Context, model string) error {
	return c.postAdmin(ctx, "/api/generate", map[string]any{"model": model, "keep_alive": 0})
}

func (c *Client) postAdmin(ctx context.Context, path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	logging.LogRequest("APP->LLM", c.baseURL, fmt.Sprint(payload["model"]), "", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: %s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ollama: read %s response: %w", path, err)
	}
	logging.LogRequest("LLM->APP", c.baseURL, "", "", respBody)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &providers.ServiceError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}
	return nil
}
