package cmd

import (
	"fmt"

	"github.com/abhisek/rekishi/internal/app"
	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/store"
	"github.com/abhisek/rekishi/internal/ui/theme"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the persisted documents, and launches the
// TUI. era and review select the starting screen.
func runApp(cmd *cobra.Command, era string, review bool) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prog := progress.Open(ctx, st.Documents())
	theme.Apply(prog.Settings.Theme)

	provider := questions.NewProvider(resolveDataDir(cmd))

	return app.Run(app.Options{
		Provider: provider,
		Store:    prog,
		StartEra: era,
		Review:   review,
	})
}

// resolveDataDir returns the question data directory using the --data flag,
// then the REKISHI_DATA env var. Empty means embedded defaults only.
func resolveDataDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	return questions.DefaultDataDir()
}
