package services

import "fmt"

// lessonPrompt asks for the full structured lesson: fixed section order, at
// least 7 quiz questions, runnable Python, valid Mermaid, 3000+ words.
func lessonPrompt(topic, difficulty, duration string) string {
  return fmt.Sprintf(`Create interactive lesson on "%s" (%s, %s).

JSON format:
{"title":"...","description":"...","estimatedTime":"%s",
"sections":[
  {"title":"Introduction","type":"text","content":"400-500 words"},
  {"title":"Core Concepts","type":"text","content":"600-700 words"},
  {"title":"Visual Understanding","type":"visual","diagram":"graph TD\nA-->B","diagramType":"mermaid","explanation":"300 words"},
  {"title":"Interactive Example","type":"code","language":"python","content":"import math\ndef calc():\n  print('test')\ncalc()","explanation":"300 words","expectedOutput":"output"},
  {"title":"Deep Dive","type":"text","content":"500 words"},
  {"title":"Practice Quiz","type":"quiz","questions":[{"question":"Q","options":["A","B","C","D"],"correct":2,"explanation":"why"}]},
  {"title":"Hands-On Project","type":"project","content":"400 words","requirements":["r1"],"hints":["h1"],"starterCode":"# code","testCases":[{"input":"x","expected":"y"}]},
  {"title":"Key Takeaways","type":"text","content":"300 words"}
]}

- 7+ quiz questions
- Runnable Python code
- Valid Mermaid syntax
- 3000+ words total

Return ONLY JSON.`, topic, difficulty, duration, duration)
}

// fallbackLessonPrompt is the reduced-instruction variant sent on the one
// permitted fallback attempt.
func fallbackLessonPrompt(topic, difficulty, duration string) string {
  return fmt.Sprintf(`Create interactive lesson on "%s" (%s, %s).

JSON format with 7+ quiz questions, runnable Python code, valid Mermaid diagrams. Return ONLY JSON.

{"title":"...","description":"...","estimatedTime":"%s","sections":[...]}`, topic, difficulty, duration, duration)
}
