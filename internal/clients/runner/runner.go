package runner

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "time"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/utils"
)

// Client executes untrusted lesson code in an external Piston-compatible
// sandbox. Only stdout comes back; everything else stays inside the sandbox.
type Client struct {
  log        *logger.Logger
  baseURL    string
  httpClient *http.Client
}

func NewClient(baseLog *logger.Logger) *Client {
  log := baseLog.With("client", "RunnerClient")
  baseURL := utils.GetEnv("RUNNER_BASE_URL", "https://emkc.org/api/v2/piston", log)
  timeoutSec := utils.GetEnvAsInt("RUNNER_TIMEOUT_SECONDS", 30, log)
  return &Client{
    log:        log,
    baseURL:    baseURL,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }
}

type executeRequest struct {
  Language string        `json:"language"`
  Version  string        `json:"version"`
  Files    []executeFile `json:"files"`
}

type executeFile struct {
  Content string `json:"content"`
}

type executeResponse struct {
  Run struct {
    Stdout string `json:"stdout"`
    Stderr string `json:"stderr"`
    Code   int    `json:"code"`
  } `json:"run"`
  Message string `json:"message,omitempty"`
}

// Run submits source to the sandbox and returns captured stdout.
func (c *Client) Run(ctx context.Context, language, source string) (string, error) {
  reqBody := executeRequest{
    Language: language,
    Version:  "*",
    Files:    []executeFile{{Content: source}},
  }
  var buf bytes.Buffer
  if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
    return "", err
  }

  req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/execute", &buf)
  if err != nil {
    return "", err
  }
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return "", fmt.Errorf("runner request: %w", err)
  }
  defer resp.Body.Close()

  raw, err := io.ReadAll(resp.Body)
  if err != nil {
    return "", fmt.Errorf("runner read response: %w", err)
  }
  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return "", fmt.Errorf("runner http %d: %s", resp.StatusCode, string(raw))
  }

  var out executeResponse
  if err := json.Unmarshal(raw, &out); err != nil {
    return "", fmt.Errorf("runner decode response: %w", err)
  }
  if out.Run.Code != 0 && out.Run.Stderr != "" {
    return "", fmt.Errorf("execution failed: %s", out.Run.Stderr)
  }
  return out.Run.Stdout, nil
}
