package types

import (
  "fmt"
  "time"
)

// Pure JSON contract for a generated lesson. The section list is the lesson's
// navigation order; consumers must preserve it.

type SectionType string

const (
  SectionText    SectionType = "text"
  SectionVisual  SectionType = "visual"
  SectionCode    SectionType = "code"
  SectionQuiz    SectionType = "quiz"
  SectionProject SectionType = "project"
)

func (st SectionType) Valid() bool {
  switch st {
  case SectionText, SectionVisual, SectionCode, SectionQuiz, SectionProject:
    return true
  }
  return false
}

type QuizQuestion struct {
  Question    string    `json:"question"`
  Options     []string  `json:"options"`
  Correct     int       `json:"correct"`
  Explanation string    `json:"explanation"`
}

type TestCase struct {
  Input    string   `json:"input"`
  Expected string   `json:"expected"`
}

// Section is a tagged variant; only the fields for its Type are populated.
type Section struct {
  Type          SectionType     `json:"type"`
  Title         string          `json:"title"`

  // text / code / project
  Content       string          `json:"content,omitempty"`

  // visual
  Diagram       string          `json:"diagram,omitempty"`
  DiagramType   string          `json:"diagramType,omitempty"`
  Explanation   string          `json:"explanation,omitempty"`

  // code
  Language      string          `json:"language,omitempty"`
  ExpectedOutput string         `json:"expectedOutput,omitempty"`

  // quiz
  Questions     []QuizQuestion  `json:"questions,omitempty"`

  // project
  Requirements  []string        `json:"requirements,omitempty"`
  Hints         []string        `json:"hints,omitempty"`
  StarterCode   string          `json:"starterCode,omitempty"`
  TestCases     []TestCase      `json:"testCases,omitempty"`
}

type LessonDocument struct {
  ID            string      `json:"id"`
  OwnerID       string      `json:"ownerId"`
  Topic         string      `json:"topic"`
  Difficulty    string      `json:"difficulty"`
  Duration      string      `json:"duration"`
  Title         string      `json:"title"`
  Description   string      `json:"description"`
  EstimatedTime string      `json:"estimatedTime,omitempty"`
  Created       time.Time   `json:"created"`
  Sections      []Section   `json:"sections"`
}

// Validate enforces the document invariants: at least one section, known
// section types, and quiz answers that index into their own option list.
func (d *LessonDocument) Validate() error {
  if len(d.Sections) == 0 {
    return fmt.Errorf("lesson has no sections")
  }
  for i, s := range d.Sections {
    if !s.Type.Valid() {
      return fmt.Errorf("section %d: unknown type %q", i, s.Type)
    }
    if s.Type != SectionQuiz {
      continue
    }
    for qi, q := range s.Questions {
      if len(q.Options) == 0 {
        return fmt.Errorf("section %d question %d: no options", i, qi)
      }
      if q.Correct < 0 || q.Correct >= len(q.Options) {
        return fmt.Errorf("section %d question %d: correct index %d out of range", i, qi, q.Correct)
      }
    }
  }
  return nil
}

// FirstSection returns the index of the first section of the given type, or -1.
func (d *LessonDocument) FirstSection(st SectionType) int {
  for i, s := range d.Sections {
    if s.Type == st {
      return i
    }
  }
  return -1
}
