package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all settings, statistics, and study history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This erases all settings, statistics, and study history.")
			fmt.Println("Run again with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		prog := progress.Open(ctx, st.Documents())
		if err := prog.Reset(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}

		fmt.Println("All data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm erasing all data")
}
