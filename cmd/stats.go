package cmd

import (
	"context"
	"fmt"

	"github.com/priyankc/mentora/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning journey statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().JourneyStats(context.Background())
		if err != nil {
			return fmt.Errorf("journey stats: %w", err)
		}

		fmt.Printf("Journeys started:    %d\n", stats.JourneysStarted)
		fmt.Printf("Journeys completed:  %d\n", stats.JourneysCompleted)
		fmt.Printf("Assessments taken:   %d\n", stats.AssessmentsTaken)
		if stats.AssessmentsTaken > 0 {
			fmt.Printf("Average score:       %.0f%%\n", stats.AverageScore)
		}
		return nil
	},
}
