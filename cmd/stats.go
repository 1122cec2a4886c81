package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartinez/hipolito/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading and quiz statistics",
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

		ctx := context.Background()

		sessions, err := s.EventRepo().SessionSummaries(ctx)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		cats, err := s.EventRepo().QuizStatsByCategory(ctx)
		if err != nil {
			return fmt.Errorf("query quiz stats: %w", err)
		}

		if len(sessions) == 0 && len(cats) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		if len(sessions) > 0 {
			fmt.Println("Sessions")
			fmt.Println(strings.Repeat("─", 56))
			fmt.Printf("%-8s  %10s  %8s  %12s\n", "Mode", "Sessions", "Turns", "Total Min")
			for _, sess := range sessions {
				fmt.Printf("%-8s  %10d  %8d  %12d\n",
					sess.Mode, sess.Sessions, sess.Turns, sess.TotalSecs/60)
			}
			fmt.Println()
		}

		if len(cats) > 0 {
			fmt.Println("Quiz Answers by Category")
			fmt.Println(strings.Repeat("─", 56))
			fmt.Printf("%-14s  %10s  %8s  %8s\n", "Category", "Answered", "Correct", "Skipped")
			for _, c := range cats {
				fmt.Printf("%-14s  %10d  %8d  %8d\n",
					c.Category, c.Answered, c.Correct, c.Skipped)
			}
		}

		return nil
	},
}
