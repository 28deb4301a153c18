package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/priyankc/mentora/internal/course"
	"github.com/priyankc/mentora/internal/llm"
	"github.com/priyankc/mentora/internal/orchestra"
	"github.com/priyankc/mentora/internal/store"
	"github.com/spf13/cobra"
)

// learnCmd runs a journey headless: it streams the agent hand-offs to
// stdout and prints the generated curriculum. Useful for scripting and for
// terminals where the TUI cannot run.
var learnCmd = &cobra.Command{
	Use:   "learn <topic>",
	Short: "Generate a learning package for a topic without the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
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

		ctrl := orchestra.New(course.NewGenerator(provider, course.DefaultConfig()), eventRepo)

		// Stream log entries while the chain runs.
		done := make(chan error, 1)
		go func() {
			done <- ctrl.Start(ctx, topic)
		}()

		var lastID int64
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()

		printNew := func() {
			for _, e := range ctrl.Snapshot().Log {
				if e.ID <= lastID {
					continue
				}
				lastID = e.ID
				fmt.Printf("[%s] %s → %s: %s\n",
					e.Timestamp.Format("15:04:05"), e.Source, e.Target, e.Message)
			}
		}

		var startErr error
	stream:
		for {
			select {
			case startErr = <-done:
				printNew()
				break stream
			case <-ticker.C:
				printNew()
			}
		}
		if startErr != nil {
			return startErr
		}

		snap := ctrl.Snapshot()
		if snap.Curriculum != nil {
			fmt.Println()
			fmt.Println(snap.Curriculum.Title)
			fmt.Println(strings.Repeat("─", len(snap.Curriculum.Title)))
			for i, mod := range snap.Curriculum.Modules {
				fmt.Printf("%d. %s\n   %s\n", i+1, mod.Title, mod.Description)
			}
		}
		if snap.Assessment != nil {
			fmt.Printf("\nAssessment ready with %d questions. Run `mentora` to take it.\n",
				len(snap.Assessment.Questions))
		}
		return nil
	},
}
