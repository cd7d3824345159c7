package anthropic

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "net/http"
  "strings"
  "time"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/utils"
)

const apiVersion = "2023-06-01"

// Client is the Anthropic Messages API client used by lesson generation.
type Client interface {
  CreateMessage(ctx context.Context, model string, prompt string) (string, error)
  Configured() bool
}

type Config struct {
  BaseURL        string
  APIKey         string
  MaxTokens      int
  Temperature    float64
  TimeoutSeconds int
}

func ConfigFromEnv(log *logger.Logger) Config {
  return Config{
    BaseURL:        utils.GetEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com", log),
    APIKey:         utils.GetEnv("ANTHROPIC_API_KEY", "", log),
    MaxTokens:      utils.GetEnvAsInt("ANTHROPIC_MAX_TOKENS", 8000, log),
    TimeoutSeconds: utils.GetEnvAsInt("ANTHROPIC_TIMEOUT_SECONDS", 180, log),
    Temperature:    0.8,
  }
}

type client struct {
  log        *logger.Logger
  cfg        Config
  httpClient *http.Client
}

// NewClient builds the client even when no API key is configured; calls fail
// with an auth error and /health reports the missing key.
func NewClient(cfg Config, baseLog *logger.Logger) Client {
  log := baseLog.With("client", "AnthropicClient")
  if cfg.APIKey == "" {
    log.Warn("ANTHROPIC_API_KEY is not set, generation requests will fail")
  }
  timeout := cfg.TimeoutSeconds
  if timeout <= 0 {
    timeout = 180
  }
  return &client{
    log:        log,
    cfg:        cfg,
    httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
  }
}

func (c *client) Configured() bool {
  return c.cfg.APIKey != ""
}

// APIError is a non-2xx provider response, with the error type parsed out of
// the body when the body is the usual {"error":{"type":...,"message":...}}.
type APIError struct {
  StatusCode int
  Type       string
  Message    string
}

func (e *APIError) Error() string {
  if e.Type != "" {
    return fmt.Sprintf("anthropic %d %s: %s", e.StatusCode, e.Type, e.Message)
  }
  return fmt.Sprintf("anthropic http %d: %s", e.StatusCode, e.Message)
}

// IsModelNotFound reports whether err is the provider rejecting the requested
// model identifier. This is the only condition the fallback policy retries on.
func IsModelNotFound(err error) bool {
  var apiErr *APIError
  if !errors.As(err, &apiErr) {
    return false
  }
  if apiErr.Type == "not_found_error" {
    return true
  }
  return strings.Contains(apiErr.Message, "not_found")
}

type messagesRequest struct {
  Model       string    `json:"model"`
  MaxTokens   int       `json:"max_tokens"`
  Temperature float64   `json:"temperature,omitempty"`
  Messages    []message `json:"messages"`
}

type message struct {
  Role    string `json:"role"`
  Content string `json:"content"`
}

type messagesResponse struct {
  Content []struct {
    Type string `json:"type"`
    Text string `json:"text,omitempty"`
  } `json:"content"`
  StopReason string `json:"stop_reason,omitempty"`
}

type errorResponse struct {
  Error struct {
    Type    string `json:"type"`
    Message string `json:"message"`
  } `json:"error"`
}

// CreateMessage sends a single-turn user prompt and returns the concatenated
// text blocks of the reply. It makes exactly one attempt: the generation
// request allows at most one retry total, and that retry is owned by the
// model-fallback policy, not the transport.
func (c *client) CreateMessage(ctx context.Context, model string, prompt string) (string, error) {
  reqBody := messagesRequest{
    Model:       model,
    MaxTokens:   c.cfg.MaxTokens,
    Temperature: c.cfg.Temperature,
    Messages:    []message{{Role: "user", Content: prompt}},
  }

  var buf bytes.Buffer
  if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
    return "", err
  }

  req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/messages", &buf)
  if err != nil {
    return "", err
  }
  req.Header.Set("x-api-key", c.cfg.APIKey)
  req.Header.Set("anthropic-version", apiVersion)
  req.Header.Set("Content-Type", "application/json")

  start := time.Now()
  resp, err := c.httpClient.Do(req)
  if err != nil {
    return "", fmt.Errorf("anthropic request: %w", err)
  }
  defer resp.Body.Close()

  raw, err := io.ReadAll(resp.Body)
  if err != nil {
    return "", fmt.Errorf("anthropic read response: %w", err)
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
    var parsed errorResponse
    if jErr := json.Unmarshal(raw, &parsed); jErr == nil && parsed.Error.Type != "" {
      apiErr.Type = parsed.Error.Type
      apiErr.Message = parsed.Error.Message
    }
    return "", apiErr
  }

  var out messagesResponse
  if err := json.Unmarshal(raw, &out); err != nil {
    return "", fmt.Errorf("anthropic decode response: %w", err)
  }

  var text strings.Builder
  for _, block := range out.Content {
    if block.Type == "text" {
      text.WriteString(block.Text)
    }
  }
  if text.Len() == 0 {
    return "", fmt.Errorf("anthropic response contained no text blocks")
  }

  c.log.Debug("Anthropic message complete", "model", model, "elapsed", time.Since(start).String())
  return text.String(), nil
}
