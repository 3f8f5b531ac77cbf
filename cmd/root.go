package cmd

import (
	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beestudy",
	Short: "National Science Bee study companion",
	Long:  "BeeStudy — terminal study app for National Science Bee prep: topic review, practice quizzes, and progress tracking across the six subject areas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BEESTUDY_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to content directory (overrides BEESTUDY_CONTENT env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BEESTUDY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentDir returns the content directory using --content flag,
// then BEESTUDY_CONTENT env var, then ./content.
func resolveContentDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("content"); dir != "" {
		return dir
	}
	return content.DefaultDir()
}
