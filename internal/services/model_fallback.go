package services

import (
  "context"

  "github.com/yungbote/lumin-backend/internal/clients/anthropic"
)

// ModelFallback is the two-step retry rule for generation: one attempt against
// the primary model with the full prompt, and only when the provider rejects
// that model identifier as unknown, one more against the fallback model with a
// reduced prompt. Every other error propagates untouched.
type ModelFallback struct {
  Primary  string
  Fallback string
}

// Attempt is one provider call for a given model/prompt pair. reduced tells
// the caller which prompt variant to send.
type Attempt func(ctx context.Context, model string, reduced bool) (string, error)

func (mf ModelFallback) Execute(ctx context.Context, attempt Attempt) (string, string, error) {
  out, err := attempt(ctx, mf.Primary, false)
  if err == nil {
    return out, mf.Primary, nil
  }
  if !anthropic.IsModelNotFound(err) || mf.Fallback == "" {
    return "", mf.Primary, err
  }
  out, err = attempt(ctx, mf.Fallback, true)
  if err != nil {
    return "", mf.Fallback, err
  }
  return out, mf.Fallback, nil
}
