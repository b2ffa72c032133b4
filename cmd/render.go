package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhay/quizforge/internal/quiz"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func renderQuiz(qz quiz.Quiz, showAnswers bool) string {
	var b strings.Builder

	title := qz.Topic
	if title == "" {
		title = "Quiz"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("id: %s  difficulty: %s  questions: %d  points: %d  ~%d min",
		qz.ID, qz.Difficulty, qz.QuestionCount(), qz.TotalPoints, qz.EstimatedTimeMinutes)))
	b.WriteString("\n\n")

	for i, q := range qz.Questions {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%d. [%s] %s", i+1, q.Type, q.Text)))
		b.WriteString("\n")
		for j, opt := range q.Options {
			b.WriteString(fmt.Sprintf("   %c) %s\n", 'A'+j, opt))
		}
		if showAnswers {
			b.WriteString(correctStyle.Render(fmt.Sprintf("   Answer: %s", q.CorrectAnswer)))
			b.WriteString("\n")
			b.WriteString(faintStyle.Render(fmt.Sprintf("   %s", q.Explanation)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderResult(res quiz.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Score: %.2f%%", res.Score)))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d/%d correct  %d/%d points",
		res.CorrectCount, res.TotalQuestions, res.PointsEarned, res.PointsPossible)))
	b.WriteString("\n\n")

	for i, fb := range res.Feedback {
		mark := wrongStyle.Render("✗")
		if fb.Correct {
			mark = correctStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, fb.Question))
		b.WriteString(fmt.Sprintf("   your answer: %s\n", displayAnswer(fb.StudentAnswer)))
		if !fb.Correct {
			b.WriteString(fmt.Sprintf("   correct answer: %s\n", fb.CorrectAnswer))
		}
		if fb.Explanation != "" {
			b.WriteString(faintStyle.Render(fmt.Sprintf("   %s", fb.Explanation)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func displayAnswer(s string) string {
	if s == "" {
		return "(no answer)"
	}
	return s
}
