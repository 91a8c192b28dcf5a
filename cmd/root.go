package cmd

import (
	"github.com/abhisek/rekishi/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rekishi",
	Short: "Japanese history quiz for the terminal",
	Long:  "Rekishi — a terminal quiz game covering Japanese history from the Jomon to the Heian period.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REKISHI_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to question data directory (overrides REKISHI_DATA env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REKISHI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
