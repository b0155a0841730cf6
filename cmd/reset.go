package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adesai/prepdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete local attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all local attempt history. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd, "")
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Attempts().Reset(context.Background()); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		fmt.Println("Local attempt history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
