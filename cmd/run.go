package cmd

import (
	"fmt"

	"github.com/priyankc/mentora/internal/app"
	"github.com/priyankc/mentora/internal/course"
	"github.com/priyankc/mentora/internal/llm"
	"github.com/priyankc/mentora/internal/orchestra"
	"github.com/priyankc/mentora/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the pipeline, and launches the TUI.
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

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	generator := course.NewGenerator(provider, course.DefaultConfig())
	ctrl := orchestra.New(generator, eventRepo)

	return app.Run(app.Options{
		Controller: ctrl,
		EventRepo:  eventRepo,
	})
}
