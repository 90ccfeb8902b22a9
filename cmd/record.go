package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/quizmate/quizmate/internal/feedback"
	"github.com/quizmate/quizmate/internal/performance"
	"github.com/quizmate/quizmate/internal/store"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a quiz attempt and show the updated analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, _ := cmd.Flags().GetString("session")
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		total, _ := cmd.Flags().GetInt("total")
		correct, _ := cmd.Flags().GetInt("correct")
		score, _ := cmd.Flags().GetFloat64("score")
		timeSpent, _ := cmd.Flags().GetFloat64("time")
		breakdown, _ := cmd.Flags().GetStringSlice("breakdown")

		if sessionID == "" {
			sessionID = uuid.NewString()
			fmt.Printf("Session: %s\n\n", sessionID)
		}
		if !cmd.Flags().Changed("score") && total > 0 {
			score = float64(correct) / float64(total) * 100
		}

		attempt := performance.Attempt{
			SessionID:        sessionID,
			Topic:            topic,
			Difficulty:       performance.ParseDifficulty(difficulty),
			TotalQuestions:   total,
			CorrectAnswers:   correct,
			ScorePercentage:  score,
			TimeSpentSeconds: timeSpent,
		}

		if len(breakdown) > 0 {
			attempt.QuestionsByTopic = make(map[string]performance.TopicCount, len(breakdown))
			for _, entry := range breakdown {
				name, counts, err := parseBreakdown(entry)
				if err != nil {
					return err
				}
				attempt.QuestionsByTopic[name] = counts
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		tracker := performance.NewTracker(store.NewAttemptLog(s.EventRepo()), nil)

		analysis, err := tracker.Analyze(ctx, attempt)
		if err != nil {
			return err
		}

		attempts, err := s.EventRepo().SessionAttempts(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("load session history: %w", err)
		}
		if err := saveSnapshot(ctx, s, sessionID, analysis, len(attempts)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
		}

		printAnalysis(analysis, total, correct)
		return nil
	},
}

func init() {
	recordCmd.Flags().String("session", "", "Session ID (generated when omitted)")
	recordCmd.Flags().String("topic", "", "Primary topic of the quiz")
	recordCmd.Flags().String("difficulty", "medium", "Difficulty the quiz was taken at: easy, medium, hard")
	recordCmd.Flags().Int("total", 0, "Number of questions in the quiz")
	recordCmd.Flags().Int("correct", 0, "Number answered correctly")
	recordCmd.Flags().Float64("score", 0, "Score percentage (computed from correct/total when omitted)")
	recordCmd.Flags().Float64("time", 0, "Time spent in seconds")
	recordCmd.Flags().StringSlice("breakdown", nil, "Per-topic results as topic=correct/total, repeatable")

	_ = recordCmd.MarkFlagRequired("topic")
	_ = recordCmd.MarkFlagRequired("total")
	_ = recordCmd.MarkFlagRequired("correct")
}

// parseBreakdown parses a "topic=correct/total" flag value.
func parseBreakdown(entry string) (string, performance.TopicCount, error) {
	name, counts, ok := strings.Cut(entry, "=")
	if !ok {
		return "", performance.TopicCount{}, fmt.Errorf("invalid breakdown %q, want topic=correct/total", entry)
	}
	var c performance.TopicCount
	if _, err := fmt.Sscanf(counts, "%d/%d", &c.Correct, &c.Total); err != nil {
		return "", performance.TopicCount{}, fmt.Errorf("invalid breakdown %q, want topic=correct/total", entry)
	}
	return name, c, nil
}

// saveSnapshot stores the session's latest analysis summary. Snapshot
// failures are not fatal; the event log remains the source of truth.
func saveSnapshot(ctx context.Context, s *store.Store, sessionID string, a *performance.Analysis, attemptCount int) error {
	repo := s.SnapshotRepo()
	err := repo.Save(ctx, &store.Snapshot{
		SessionID: sessionID,
		Sequence:  int64(attemptCount),
		Data: store.SnapshotData{
			Version:        1,
			OverallScore:   a.OverallScore,
			NextDifficulty: string(a.NextDifficulty),
			Progression:    a.DifficultyProgression,
			AttemptCount:   attemptCount,
		},
	})
	if err != nil {
		return err
	}
	_ = repo.Prune(ctx, sessionID, 5)
	return nil
}

func printAnalysis(a *performance.Analysis, total, correct int) {
	gen := feedback.NewGenerator(nil)

	fmt.Println(gen.CompletionMessage(a.OverallScore, total, correct))
	fmt.Println()

	fmt.Printf("Overall score:   %.1f%%\n", a.OverallScore)
	fmt.Printf("Progression:     %s\n", a.DifficultyProgression)
	fmt.Printf("Next difficulty: %s\n", a.NextDifficulty)

	fmt.Println("\nAccuracy by topic:")
	for _, topic := range sortedKeys(a.AccuracyByTopic) {
		fmt.Printf("  %-24s %5.1f%%  %s\n", topic, a.AccuracyByTopic[topic], feedback.TopicFeedback(topic, a.AccuracyByTopic[topic]))
	}

	fmt.Println("\nStrengths:")
	for _, s := range a.Strengths {
		fmt.Printf("  - %s\n", s)
	}

	fmt.Println("\nAreas for improvement:")
	for _, w := range a.AreasForImprovement {
		fmt.Printf("  - %s\n", w)
	}

	fmt.Println("\nRecommended actions:")
	for _, r := range a.RecommendedActions {
		fmt.Printf("  - %s\n", r)
	}

	fmt.Printf("\n%s\n", a.EncouragementMessage)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
