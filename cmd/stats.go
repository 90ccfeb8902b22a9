package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/quizmate/quizmate/internal/feedback"
	"github.com/quizmate/quizmate/internal/performance"
	"github.com/quizmate/quizmate/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Show session statistics, or list sessions when no ID is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if len(args) == 0 {
			return listSessions(ctx, s)
		}
		return sessionStats(ctx, s, args[0])
	},
}

func listSessions(ctx context.Context, s *store.Store) error {
	sessions, err := s.EventRepo().Sessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("%-40s %8s %8s %s\n", "SESSION", "ATTEMPTS", "SCORE", "NEXT")
	for _, id := range sessions {
		attempts, err := s.EventRepo().SessionAttempts(ctx, id)
		if err != nil {
			return err
		}
		score, next := "-", "-"
		if snap, err := s.SnapshotRepo().Latest(ctx, id); err == nil && snap != nil {
			score = fmt.Sprintf("%.1f%%", snap.Data.OverallScore)
			next = snap.Data.NextDifficulty
		}
		fmt.Printf("%-40s %8d %8s %s\n", id, len(attempts), score, next)
	}
	return nil
}

func sessionStats(ctx context.Context, s *store.Store, sessionID string) error {
	attempts, err := s.EventRepo().SessionAttempts(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Println("No quiz attempts recorded for this session.")
		return nil
	}

	perfAttempts := make([]performance.Attempt, len(attempts))
	var totalQuestions, totalCorrect int
	var totalTime float64
	for i, a := range attempts {
		perfAttempts[i] = store.ToPerformanceAttempt(a)
		totalQuestions += a.TotalQuestions
		totalCorrect += a.CorrectAnswers
		totalTime += a.TimeSpentSeconds
	}
	accuracy := performance.TopicAccuracy(perfAttempts)

	fmt.Printf("Session:         %s\n", sessionID)
	fmt.Printf("Attempts:        %d\n", len(attempts))
	fmt.Printf("Questions:       %d (%d correct)\n", totalQuestions, totalCorrect)
	if totalTime > 0 {
		fmt.Printf("Time spent:      %.0fs\n", totalTime)
	}
	if snap, err := s.SnapshotRepo().Latest(ctx, sessionID); err == nil && snap != nil {
		fmt.Printf("Latest score:    %.1f%%\n", snap.Data.OverallScore)
		fmt.Printf("Progression:     %s\n", snap.Data.Progression)
		fmt.Printf("Next difficulty: %s\n", snap.Data.NextDifficulty)
	}

	fmt.Println("\nTopic accuracy:")
	topics := make([]string, 0, len(accuracy))
	for t := range accuracy {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	var weak []string
	for _, t := range topics {
		fmt.Printf("  %-24s %5.1f%%  %s\n", t, accuracy[t], feedback.TopicFeedback(t, accuracy[t]))
		if accuracy[t] < performance.MasteryThreshold {
			weak = append(weak, t)
		}
	}

	gen := feedback.NewGenerator(nil)
	fmt.Printf("\n%s\n", gen.StudyTip(weak))
	return nil
}
