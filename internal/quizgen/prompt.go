package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhay/quizforge/internal/quiz"
)

// buildPrompt constructs the generation prompt. The requested line
// format is exactly what the assembler recognizes, so a well-behaved
// model round-trips cleanly and a sloppy one degrades to dropped
// blocks rather than a hard failure.
func buildPrompt(topic, difficulty string, count int, types []quiz.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d %s level quiz questions about %s.\n\n", count, difficulty, topic)
	fmt.Fprintf(&b, "Allowed question types: %s.\n\n", strings.Join(names, ", "))
	b.WriteString(`For each question, provide:
1. The question text
2. Question type (one of the allowed types)
3. For multiple choice: 4 options (A, B, C, D)
4. The correct answer
5. A brief explanation of why the answer is correct

Format your response as follows for each question:
Question X: [question text]
Type: [question type]
Options: (if multiple choice)
A) [option A]
B) [option B]
C) [option C]
D) [option D]
Correct Answer: [correct answer]
Explanation: [explanation]

---`)
	return b.String()
}
