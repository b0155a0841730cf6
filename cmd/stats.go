package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adesai/prepdeck/internal/analytics"
	"github.com/adesai/prepdeck/internal/api"
)

var statsCmd = &cobra.Command{
	Use:   "stats <course-id>",
	Short: "Show your latest submitted statistics for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id must be a number: %q", args[0])
		}

		_, client, err := buildClient(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		cat, err := client.Catalog(ctx, courseID, api.ModeFull)
		if err != nil {
			return fmt.Errorf("fetch catalog: %w", err)
		}

		payload, err := client.LatestAnalytics(ctx, courseID)
		if errors.Is(err, api.ErrNoAnalytics) {
			fmt.Println("No submitted attempts for this course yet.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("fetch analytics: %w", err)
		}

		summary, _ := analytics.Build(cat.Flatten(), cat.TotalQuestions, payload)
		fmt.Printf("%s\n", cat.Name)
		fmt.Printf("  Total questions: %d\n", summary.TotalQuestions)
		fmt.Printf("  Attempted:       %d\n", summary.AttemptedCount)
		fmt.Printf("  Correct:         %d\n", summary.CorrectCount)
		fmt.Printf("  Incorrect:       %d\n", summary.IncorrectCount)
		fmt.Printf("  Flagged:         %d\n", summary.FlaggedCount)
		fmt.Printf("  Skipped:         %d\n", summary.SkippedCount)
		fmt.Printf("  Accuracy:        %d%%\n", summary.AccuracyPercent)
		return nil
	},
}
