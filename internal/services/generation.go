package services

import (
  "context"
  "encoding/json"
  "fmt"
  "regexp"
  "strings"
  "time"

  "github.com/google/uuid"

  "github.com/yungbote/lumin-backend/internal/clients/anthropic"
  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/store"
  "github.com/yungbote/lumin-backend/internal/types"
)

const defaultDuration = "30 minutes"

type GenerateRequest struct {
  Topic      string
  Difficulty string
  Duration   string
}

type GenerationService interface {
  Generate(ctx context.Context, ownerID uuid.UUID, req GenerateRequest) (*types.LessonDocument, error)
}

type generationService struct {
  log      *logger.Logger
  store    store.Store
  ai       anthropic.Client
  fallback ModelFallback
}

func NewGenerationService(baseLog *logger.Logger, st store.Store, ai anthropic.Client, fallback ModelFallback) GenerationService {
  return &generationService{
    log:      baseLog.With("service", "GenerationService"),
    store:    st,
    ai:       ai,
    fallback: fallback,
  }
}

// Generate runs the full pipeline: prompt the model, unwrap any code fence,
// parse and validate the document, stamp identity fields, persist once.
// Any failure before the store write is terminal; nothing partial is saved.
func (gs *generationService) Generate(ctx context.Context, ownerID uuid.UUID, req GenerateRequest) (*types.LessonDocument, error) {
  if req.Duration == "" {
    req.Duration = defaultDuration
  }
  gs.log.Info("Generating lesson", "topic", req.Topic, "difficulty", req.Difficulty, "duration", req.Duration)

  raw, model, err := gs.fallback.Execute(ctx, func(ctx context.Context, model string, reduced bool) (string, error) {
    prompt := lessonPrompt(req.Topic, req.Difficulty, req.Duration)
    if reduced {
      gs.log.Warn("Primary model rejected, trying fallback model", "fallback_model", model)
      prompt = fallbackLessonPrompt(req.Topic, req.Difficulty, req.Duration)
    }
    return gs.ai.CreateMessage(ctx, model, prompt)
  })
  if err != nil {
    return nil, fmt.Errorf("generation request failed: %w", err)
  }

  doc, err := parseLessonDocument(raw)
  if err != nil {
    gs.log.Error("Generated lesson failed to parse", "model", model, "error", err)
    return nil, err
  }

  doc.ID = uuid.New().String()
  doc.OwnerID = ownerID.String()
  doc.Topic = req.Topic
  doc.Difficulty = req.Difficulty
  doc.Duration = req.Duration
  doc.Created = time.Now().UTC()

  if err := gs.store.PutLesson(ctx, doc); err != nil {
    return nil, fmt.Errorf("persist lesson: %w", err)
  }

  gs.log.Info("Lesson generated", "lesson_id", doc.ID, "model", model, "sections", len(doc.Sections))
  return doc, nil
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\n?(.*?)\n?```")

// extractJSON strips a fenced code block (with optional language tag) from the
// model reply. Replies without a fence pass through unchanged.
func extractJSON(content string) string {
  if m := fenceRe.FindStringSubmatch(content); m != nil {
    content = m[1]
  }
  return strings.TrimSpace(content)
}

func parseLessonDocument(raw string) (*types.LessonDocument, error) {
  var doc types.LessonDocument
  if err := json.Unmarshal([]byte(extractJSON(raw)), &doc); err != nil {
    return nil, fmt.Errorf("parse generated lesson: %w", err)
  }
  if err := doc.Validate(); err != nil {
    return nil, fmt.Errorf("generated lesson invalid: %w", err)
  }
  return &doc, nil
}
