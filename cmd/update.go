package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/quizmate/quizmate/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCheckOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update quizmate to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if updateCheckOnly {
			return reportLatestVersion(ctx, checker)
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: buildVersion(),
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; install a release build to use self-update.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("quizmate is up to date.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo quizmate update", err)
		default:
			return err
		}
	},
}

// reportLatestVersion prints whether a newer release exists, without
// touching the installed binary.
func reportLatestVersion(ctx context.Context, checker *selfupdate.Checker) error {
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: buildVersion()})
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}

	if !result.UpdateAvailable {
		fmt.Println("quizmate is up to date.")
		return nil
	}

	fmt.Printf("Update available: %s (installed: %s)\n", result.LatestVersion, buildVersion())
	if result.ReleaseURL != "" {
		fmt.Println(result.ReleaseURL)
	}
	fmt.Println("\nRun: quizmate update")
	return nil
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Check for a newer release without installing it")
}
