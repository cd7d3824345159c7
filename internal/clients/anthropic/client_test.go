package anthropic

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/yungbote/lumin-backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  return log
}

func newTestClient(t *testing.T, srv *httptest.Server) Client {
  t.Helper()
  return NewClient(Config{
    BaseURL:   srv.URL,
    APIKey:    "test-key",
    MaxTokens: 100,
  }, testLogger(t))
}

func TestCreateMessageParsesTextBlocks(t *testing.T) {
  var gotModel string
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    if r.URL.Path != "/v1/messages" {
      t.Errorf("path = %q", r.URL.Path)
    }
    if r.Header.Get("x-api-key") != "test-key" {
      t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
    }
    if r.Header.Get("anthropic-version") == "" {
      t.Errorf("missing anthropic-version header")
    }
    var req map[string]any
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
      t.Errorf("decode request: %v", err)
    }
    gotModel, _ = req["model"].(string)
    json.NewEncoder(w).Encode(map[string]any{
      "content": []map[string]any{
        {"type": "text", "text": "{\"title\":"},
        {"type": "text", "text": "\"Recursion\"}"},
      },
    })
  }))
  defer srv.Close()

  out, err := newTestClient(t, srv).CreateMessage(context.Background(), "claude-test", "prompt")
  if err != nil {
    t.Fatalf("CreateMessage: %v", err)
  }
  if out != `{"title":"Recursion"}` {
    t.Fatalf("out = %q", out)
  }
  if gotModel != "claude-test" {
    t.Fatalf("model = %q", gotModel)
  }
}

func TestCreateMessageNoTextBlocks(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    json.NewEncoder(w).Encode(map[string]any{"content": []map[string]any{}})
  }))
  defer srv.Close()

  if _, err := newTestClient(t, srv).CreateMessage(context.Background(), "claude-test", "prompt"); err == nil {
    t.Fatalf("CreateMessage = nil error for empty content")
  }
}

func TestCreateMessageAPIError(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusNotFound)
    json.NewEncoder(w).Encode(map[string]any{
      "type": "error",
      "error": map[string]any{
        "type":    "not_found_error",
        "message": "model: claude-test",
      },
    })
  }))
  defer srv.Close()

  _, err := newTestClient(t, srv).CreateMessage(context.Background(), "claude-test", "prompt")
  if err == nil {
    t.Fatalf("CreateMessage = nil error for 404")
  }
  if !IsModelNotFound(err) {
    t.Fatalf("IsModelNotFound(%v) = false", err)
  }
}

func TestIsModelNotFound(t *testing.T) {
  cases := []struct {
    name string
    err  error
    want bool
  }{
    {name: "typed_not_found", err: &APIError{StatusCode: 404, Type: "not_found_error", Message: "model"}, want: true},
    {name: "message_mentions_not_found", err: &APIError{StatusCode: 400, Message: "model not_found"}, want: true},
    {name: "other_api_error", err: &APIError{StatusCode: 529, Type: "overloaded_error", Message: "busy"}, want: false},
    {name: "plain_error", err: context.DeadlineExceeded, want: false},
    {name: "nil", err: nil, want: false},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if got := IsModelNotFound(tc.err); got != tc.want {
        t.Fatalf("IsModelNotFound = %v, want %v", got, tc.want)
      }
    })
  }
}

func TestConfigured(t *testing.T) {
  log := testLogger(t)
  if NewClient(Config{APIKey: ""}, log).Configured() {
    t.Fatalf("Configured() = true without a key")
  }
  if !NewClient(Config{APIKey: "k"}, log).Configured() {
    t.Fatalf("Configured() = false with a key")
  }
}
