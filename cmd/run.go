package cmd

import (
	"fmt"

	"github.com/faraz/beestudy/internal/app"
	"github.com/faraz/beestudy/internal/content"
	"github.com/faraz/beestudy/internal/progress"
	"github.com/faraz/beestudy/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads content, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	provider := content.Load(resolveContentDir(cmd))
	prog := progress.NewService(ctx, st.SnapshotRepo(), st.EventRepo())

	return app.Run(app.Deps{
		Provider: provider,
		Progress: prog,
	})
}
