package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhay/quizforge/internal/store"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List and inspect stored quizzes",
}

var quizzesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored quizzes",
	RunE:  runQuizzesList,
}

var quizzesShowCmd = &cobra.Command{
	Use:   "show <quiz-id>",
	Short: "Show a stored quiz",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuizzesShow,
}

var quizzesAttemptsCmd = &cobra.Command{
	Use:   "attempts <quiz-id>",
	Short: "List grading attempts for a quiz",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuizzesAttempts,
}

func init() {
	quizzesListCmd.Flags().Int("limit", 20, "Maximum number of quizzes to show (0 = all)")
	quizzesShowCmd.Flags().Bool("json", false, "Print the quiz as JSON")
	quizzesShowCmd.Flags().Bool("show-answers", false, "Include correct answers in the output")

	quizzesCmd.AddCommand(quizzesListCmd)
	quizzesCmd.AddCommand(quizzesShowCmd)
	quizzesCmd.AddCommand(quizzesAttemptsCmd)
}

func runQuizzesList(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	path, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	infos, err := st.QuizRepo().List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No quizzes stored yet. Run 'quizforge generate' to create one.")
		return nil
	}

	fmt.Printf("%-38s %-20s %-8s %6s %6s  %s\n", "ID", "TOPIC", "LEVEL", "QS", "PTS", "CREATED")
	for _, info := range infos {
		fmt.Printf("%-38s %-20s %-8s %6d %6d  %s\n",
			info.ID, truncate(info.Topic, 20), info.Difficulty,
			info.QuestionCount, info.TotalPoints,
			info.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runQuizzesShow(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	showAnswers, _ := cmd.Flags().GetBool("show-answers")

	path, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	qz, err := st.QuizRepo().Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("quiz %s not found", args[0])
		}
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(qz, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(renderQuiz(qz, showAnswers))
	return nil
}

func runQuizzesAttempts(cmd *cobra.Command, args []string) error {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	attempts, err := st.AttemptRepo().ListByQuiz(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Println("No attempts recorded for this quiz.")
		return nil
	}

	fmt.Printf("%-6s %8s %9s %8s  %s\n", "ID", "SCORE", "CORRECT", "POINTS", "WHEN")
	for _, a := range attempts {
		fmt.Printf("%-6d %7.2f%% %4d/%-4d %4d/%-4d %s\n",
			a.ID, a.Result.Score,
			a.Result.CorrectCount, a.Result.TotalQuestions,
			a.Result.PointsEarned, a.Result.PointsPossible,
			a.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
