package navigator

import (
  "context"
  "errors"
  "fmt"

  "github.com/yungbote/lumin-backend/internal/types"
)

// DiagramRenderer turns diagram source text into displayable output (the web
// client uses Mermaid; tests and CLIs can plug anything in).
type DiagramRenderer interface {
  Render(diagram, diagramType string) (string, error)
}

// CodeRunner executes lesson code in a sandbox and returns captured stdout.
type CodeRunner interface {
  Run(ctx context.Context, language, source string) (string, error)
}

// Navigator walks a lesson document section by section, holding the per-session
// interaction state: quiz answers, reveal flags, the editable code buffer and
// its last output, and the rendered diagram per visual section.
type Navigator struct {
  doc      *types.LessonDocument
  renderer DiagramRenderer
  runner   CodeRunner

  index        int
  quizAnswers  map[int]int
  revealed     map[int]bool
  code         string
  codeLanguage string
  codeOutput   string
  diagrams     map[int]string
}

func New(doc *types.LessonDocument, renderer DiagramRenderer, runner CodeRunner) (*Navigator, error) {
  if doc == nil {
    return nil, errors.New("nil lesson document")
  }
  if err := doc.Validate(); err != nil {
    return nil, err
  }
  n := &Navigator{
    doc:         doc,
    renderer:    renderer,
    runner:      runner,
    quizAnswers: map[int]int{},
    revealed:    map[int]bool{},
    diagrams:    map[int]string{},
  }
  if ci := doc.FirstSection(types.SectionCode); ci >= 0 {
    n.code = doc.Sections[ci].Content
    n.codeLanguage = doc.Sections[ci].Language
  }
  n.enterSection()
  return n, nil
}

func (n *Navigator) Index() int {
  return n.index
}

func (n *Navigator) Section() types.Section {
  return n.doc.Sections[n.index]
}

// Progress reports the 1-based position and the section count.
func (n *Navigator) Progress() (int, int) {
  return n.index + 1, len(n.doc.Sections)
}

// GoTo clamps the target into the valid range and enters that section.
func (n *Navigator) GoTo(index int) int {
  if index < 0 {
    index = 0
  }
  if max := len(n.doc.Sections) - 1; index > max {
    index = max
  }
  n.index = index
  n.enterSection()
  return n.index
}

func (n *Navigator) Next() int {
  return n.GoTo(n.index + 1)
}

func (n *Navigator) Previous() int {
  return n.GoTo(n.index - 1)
}

func (n *Navigator) CanGoNext() bool {
  return n.index < len(n.doc.Sections)-1
}

func (n *Navigator) CanGoPrevious() bool {
  return n.index > 0
}

// enterSection re-renders the diagram when landing on a visual section. The
// output slot is replaced each time, so revisiting never stacks copies.
func (n *Navigator) enterSection() {
  s := n.doc.Sections[n.index]
  if s.Type != types.SectionVisual || n.renderer == nil {
    return
  }
  out, err := n.renderer.Render(s.Diagram, s.DiagramType)
  if err != nil {
    delete(n.diagrams, n.index)
    return
  }
  n.diagrams[n.index] = out
}

// Diagram returns the rendered output for a visual section, if any.
func (n *Navigator) Diagram(index int) (string, bool) {
  out, ok := n.diagrams[index]
  return out, ok
}

// SelectQuizOption records an answer for a question of the current quiz
// section and reveals its explanation. The first answer locks: once revealed,
// later selections are ignored. Returns whether the selection was recorded.
func (n *Navigator) SelectQuizOption(questionIndex, optionIndex int) bool {
  s := n.doc.Sections[n.index]
  if s.Type != types.SectionQuiz {
    return false
  }
  if questionIndex < 0 || questionIndex >= len(s.Questions) {
    return false
  }
  if optionIndex < 0 || optionIndex >= len(s.Questions[questionIndex].Options) {
    return false
  }
  if n.revealed[questionIndex] {
    return false
  }
  n.quizAnswers[questionIndex] = optionIndex
  n.revealed[questionIndex] = true
  return true
}

func (n *Navigator) Revealed(questionIndex int) bool {
  return n.revealed[questionIndex]
}

// IsCorrect computes correctness from the recorded answer at read time; it is
// never stored. False when the question has not been answered.
func (n *Navigator) IsCorrect(questionIndex int) bool {
  s := n.doc.Sections[n.index]
  if s.Type != types.SectionQuiz {
    return false
  }
  answer, ok := n.quizAnswers[questionIndex]
  if !ok || questionIndex >= len(s.Questions) {
    return false
  }
  return answer == s.Questions[questionIndex].Correct
}

func (n *Navigator) Code() string {
  return n.code
}

func (n *Navigator) SetCode(source string) {
  n.code = source
}

func (n *Navigator) CodeOutput() string {
  return n.codeOutput
}

// RunCode executes the current buffer through the sandbox. Failures land in
// the output buffer instead of propagating, so the lesson flow never breaks on
// bad code.
func (n *Navigator) RunCode(ctx context.Context) string {
  if n.runner == nil {
    n.codeOutput = "Error: no code runner configured"
    return n.codeOutput
  }
  out, err := n.runner.Run(ctx, n.codeLanguage, n.code)
  if err != nil {
    n.codeOutput = fmt.Sprintf("Error: %v", err)
    return n.codeOutput
  }
  if out == "" {
    out = "Code executed successfully (no output)"
  }
  n.codeOutput = out
  return n.codeOutput
}
