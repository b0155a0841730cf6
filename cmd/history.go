package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adesai/prepdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent attempts from local history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd, "")
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		recs, err := st.Attempts().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		for _, r := range recs {
			sync := " "
			if r.Submitted {
				sync = "✓"
			}
			fmt.Printf("%s  %-30s %-5s %3d%%  %d/%d correct  %s\n",
				r.FinishedAt.Format("2006-01-02 15:04"), r.CourseName, r.Mode,
				r.AccuracyPercent, r.CorrectCount, r.TotalQuestions, sync)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Maximum attempts to show (default 20)")
}
