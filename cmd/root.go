package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adesai/prepdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Terminal client for competitive exam prep",
	Long:  "Prepdeck is a terminal client for exam preparation: practice quizzes, timed mock exams, and attempt statistics for your enrolled courses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Platform API root (overrides PREPDECK_API_URL)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token (overrides PREPDECK_TOKEN)")
	rootCmd.PersistentFlags().String("db", "", "Path to local history database (overrides PREPDECK_DB)")

	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PREPDECK_DB via config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfgPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfgPath != "" {
		return cfgPath, store.EnsureDir(cfgPath)
	}
	return store.DefaultDBPath()
}
