package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhay/quizforge/internal/grading"
	"github.com/abhay/quizforge/internal/quiz"
	"github.com/abhay/quizforge/internal/store"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <quiz-id>",
	Short: "Grade a submission against a stored quiz",
	Long: `Grade loads a quiz by id and scores a submission against it. The
submission is a JSON document mapping question ids to answers, for
example: {"answers": {"q_1": "4", "q_2": "true"}}.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().String("answers", "", "Path to submission JSON file, or - for stdin (required)")
	gradeCmd.Flags().Int("time", 0, "Time taken in seconds")
	gradeCmd.Flags().Bool("json", false, "Print the result as JSON")
	gradeCmd.MarkFlagRequired("answers")
}

func runGrade(cmd *cobra.Command, args []string) error {
	quizID := args[0]
	answersPath, _ := cmd.Flags().GetString("answers")
	timeTaken, _ := cmd.Flags().GetInt("time")
	asJSON, _ := cmd.Flags().GetBool("json")

	raw, err := readAnswers(answersPath)
	if err != nil {
		return err
	}
	sub, err := quiz.ParseSubmission(raw)
	if err != nil {
		return err
	}
	sub.QuizID = quizID
	if timeTaken > 0 {
		sub.TimeTakenSec = timeTaken
	}

	path, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	qz, err := st.QuizRepo().Get(ctx, quizID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("quiz %s not found", quizID)
		}
		return err
	}

	res := grading.New(grading.DefaultConfig()).Grade(qz, sub)

	attempt := store.Attempt{QuizID: quizID, Answers: sub.Answers, Result: res}
	if err := st.AttemptRepo().Save(ctx, &attempt); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save attempt: %v\n", err)
	}

	if asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(renderResult(res))
	return nil
}

func readAnswers(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
