package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/quizmate/quizmate/internal/llm"
	"github.com/quizmate/quizmate/internal/performance"
	"github.com/quizmate/quizmate/internal/quizgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <document.txt>",
	Short: "Generate a study pack from a text document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		focus, _ := cmd.Flags().GetStringSlice("focus")
		objectives, _ := cmd.Flags().GetStringSlice("objective")
		mcCount, _ := cmd.Flags().GetInt("mc")
		tfCount, _ := cmd.Flags().GetInt("tf")
		saCount, _ := cmd.Flags().GetInt("sa")
		cardCount, _ := cmd.Flags().GetInt("flashcards")
		skipCheck, _ := cmd.Flags().GetBool("skip-content-check")
		asJSON, _ := cmd.Flags().GetBool("json")
		outPath, _ := cmd.Flags().GetString("out")

		doc, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		cfg := quizgen.DefaultConfig()
		if cmd.Flags().Changed("mc") {
			cfg.MultipleChoiceCount = mcCount
		}
		if cmd.Flags().Changed("tf") {
			cfg.TrueFalseCount = tfCount
		}
		if cmd.Flags().Changed("sa") {
			cfg.ShortAnswerCount = saCount
		}
		if cmd.Flags().Changed("flashcards") {
			cfg.FlashcardCount = cardCount
		}
		cfg.SkipContentCheck = skipCheck

		pack, err := quizgen.New(provider, cfg).Generate(ctx, quizgen.GenerateInput{
			DocumentText:       string(doc),
			Difficulty:         performance.ParseDifficulty(difficulty),
			FocusAreas:         focus,
			LearningObjectives: objectives,
		})
		if err != nil {
			var nonEdu *quizgen.ErrNonEducationalContent
			if errors.As(err, &nonEdu) {
				return fmt.Errorf("document rejected: %s content (%s)", nonEdu.ContentType, nonEdu.Reason)
			}
			return err
		}

		if outPath != "" {
			data, err := json.MarshalIndent(pack, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write study pack: %w", err)
			}
			fmt.Printf("Study pack written to %s\n", outPath)
			return nil
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(pack)
		}

		printStudyPack(pack)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("difficulty", "medium", "Target difficulty: easy, medium, hard")
	generateCmd.Flags().StringSlice("focus", nil, "Topics to focus question generation on")
	generateCmd.Flags().StringSlice("objective", nil, "Learning objectives, e.g. conceptual_understanding")
	generateCmd.Flags().Int("mc", 0, "Number of multiple choice questions")
	generateCmd.Flags().Int("tf", 0, "Number of true/false questions")
	generateCmd.Flags().Int("sa", 0, "Number of short answer questions")
	generateCmd.Flags().Int("flashcards", 0, "Number of flashcards")
	generateCmd.Flags().Bool("skip-content-check", false, "Skip the educational-content gate")
	generateCmd.Flags().Bool("json", false, "Print the study pack as JSON")
	generateCmd.Flags().String("out", "", "Write the study pack JSON to a file")
}

func printStudyPack(pack *quizgen.StudyPack) {
	if pack.Summary != "" {
		fmt.Println("SUMMARY")
		fmt.Println(pack.Summary)
		fmt.Println()
	}

	if len(pack.KeyTerms) > 0 {
		fmt.Println("KEY TERMS")
		for _, t := range pack.KeyTerms {
			fmt.Printf("  - %s\n", t)
		}
		fmt.Println()
	}

	if len(pack.MultipleChoiceQuestions) > 0 {
		fmt.Printf("MULTIPLE CHOICE (%d)\n", len(pack.MultipleChoiceQuestions))
		for i, q := range pack.MultipleChoiceQuestions {
			fmt.Printf("%d. %s [%s]\n", i+1, q.Question, q.Difficulty)
			for j, opt := range q.Options {
				marker := " "
				if j == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Printf("   %s %c) %s\n", marker, 'a'+j, opt)
			}
			if q.Explanation != "" {
				fmt.Printf("   > %s\n", q.Explanation)
			}
		}
		fmt.Println()
	}

	if len(pack.TrueFalseQuestions) > 0 {
		fmt.Printf("TRUE/FALSE (%d)\n", len(pack.TrueFalseQuestions))
		for i, q := range pack.TrueFalseQuestions {
			fmt.Printf("%d. %s (%t)\n", i+1, q.Question, q.CorrectAnswer)
		}
		fmt.Println()
	}

	if len(pack.ShortAnswerQuestions) > 0 {
		fmt.Printf("SHORT ANSWER (%d)\n", len(pack.ShortAnswerQuestions))
		for i, q := range pack.ShortAnswerQuestions {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			fmt.Printf("   Sample: %s\n", q.SampleAnswer)
		}
		fmt.Println()
	}

	if len(pack.Flashcards) > 0 {
		fmt.Printf("FLASHCARDS (%d)\n", len(pack.Flashcards))
		for _, c := range pack.Flashcards {
			fmt.Printf("  %s — %s\n", c.Front, c.Back)
		}
		fmt.Println()
	}

	if pack.StudyNotes != "" {
		fmt.Println("STUDY NOTES")
		fmt.Println(pack.StudyNotes)
	}
}
