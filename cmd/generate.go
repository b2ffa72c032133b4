package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhay/quizforge/internal/llm"
	"github.com/abhay/quizforge/internal/quiz"
	"github.com/abhay/quizforge/internal/quizgen"
	"github.com/abhay/quizforge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz on a topic",
	Long: `Generate asks the configured AI provider for quiz questions on a
topic, parses and validates the response, and stores the resulting
quiz. With --from-file the AI call is skipped and the quiz is parsed
from a local text file instead.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Quiz topic (required)")
	generateCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium or hard")
	generateCmd.Flags().Int("count", 0, "Number of questions to request")
	generateCmd.Flags().String("types", "", "Comma-separated question types (multiple_choice,true_false,short_answer)")
	generateCmd.Flags().String("from-file", "", "Parse quiz from a text file instead of calling the AI provider")
	generateCmd.Flags().Bool("json", false, "Print the quiz as JSON")
	generateCmd.Flags().Bool("show-answers", false, "Include correct answers in the output")
	generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	typesCSV, _ := cmd.Flags().GetString("types")
	fromFile, _ := cmd.Flags().GetString("from-file")
	asJSON, _ := cmd.Flags().GetBool("json")
	showAnswers, _ := cmd.Flags().GetBool("show-answers")

	types, err := parseTypes(typesCSV)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st := openStore(cmd)
	if st != nil {
		defer st.Close()
	}

	engine := quizgen.New(quizgen.DefaultConfig(), nil)

	var qz quiz.Quiz
	if fromFile != "" {
		raw, err := os.ReadFile(fromFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", fromFile, err)
		}
		qz = engine.Generate(string(raw), types, topic, difficulty)
	} else {
		var events store.EventRepo
		if st != nil {
			events = st.EventRepo()
		}
		provider, err := llm.NewProviderFromEnv(ctx, events)
		if err != nil {
			return err
		}
		gcfg := quizgen.DefaultGeneratorConfig()
		gen := quizgen.NewGenerator(provider, engine, gcfg)
		qz, err = gen.Generate(ctx, quizgen.GenerateRequest{
			Topic:         topic,
			Difficulty:    difficulty,
			QuestionCount: count,
			Types:         types,
		})
		if err != nil {
			return err
		}
	}

	if qz.Empty() {
		return fmt.Errorf("no valid questions could be parsed, try again")
	}

	if st != nil {
		if err := st.QuizRepo().Save(ctx, qz); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save quiz: %v\n", err)
		}
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

// openStore opens the quiz database, printing a warning instead of
// failing when it is unavailable. Generation still works without it.
func openStore(cmd *cobra.Command) *store.Store {
	path, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not resolve database path: %v\n", err)
		return nil
	}
	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open database: %v\n", err)
		return nil
	}
	return st
}

func parseTypes(csv string) ([]quiz.Type, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	var types []quiz.Type
	for _, part := range strings.Split(csv, ",") {
		t, err := quiz.ParseType(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
