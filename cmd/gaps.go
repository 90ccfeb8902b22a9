package cmd

import (
	"context"
	"fmt"

	"github.com/quizmate/quizmate/internal/performance"
	"github.com/quizmate/quizmate/internal/store"
	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <session-id>",
	Short: "Identify learning gaps across a session's history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		tracker := performance.NewTracker(store.NewAttemptLog(s.EventRepo()), nil)
		gaps, err := tracker.AnalyzeGaps(context.Background(), args[0])
		if err != nil {
			return err
		}

		if gaps.Message != "" {
			fmt.Println(gaps.Message)
			return nil
		}
		if !gaps.GapsIdentified {
			fmt.Println(gaps.OverallRecommendation)
			return nil
		}

		fmt.Println("Struggling topics:")
		for _, f := range gaps.RemedialFocus {
			fmt.Printf("  %-24s %5.1f%% (target %.0f%%)\n", f.Topic, f.CurrentAccuracy, f.TargetAccuracy)
			fmt.Printf("      %s\n", f.Recommendation)
		}

		fmt.Println("\nPrerequisite review:")
		for _, p := range gaps.PrerequisiteGaps {
			fmt.Printf("  - %s\n", p)
		}

		fmt.Printf("\n%s\n", gaps.OverallRecommendation)
		return nil
	},
}
