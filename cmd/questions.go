package cmd

import (
	"fmt"
	"strings"

	"github.com/smartinez/hipolito/internal/quiz"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions (optionally filtered by category or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		var questions []quiz.Question
		for _, q := range quiz.DefaultQuestions() {
			if category != "" && q.Category != category {
				continue
			}
			if difficulty != "" && q.Difficulty != difficulty {
				continue
			}
			questions = append(questions, q)
		}
		if len(questions) == 0 {
			return fmt.Errorf("no questions match the given filters")
		}

		// Header.
		fmt.Printf("%-4s  %-56s  %-12s  %s\n",
			"ID", "Prompt", "Category", "Difficulty")
		fmt.Println(strings.Repeat("─", 90))

		for _, q := range questions {
			prompt := q.Prompt
			if len([]rune(prompt)) > 56 {
				prompt = string([]rune(prompt)[:53]) + "..."
			}
			fmt.Printf("%-4d  %-56s  %-12s  %s\n",
				q.ID, prompt, q.Category, q.Difficulty)
		}

		fmt.Printf("\n%d questions\n", len(questions))
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("category", "", "Filter by category (e.g. personajes)")
	questionsCmd.Flags().String("difficulty", "", "Filter by difficulty (fácil, medio)")
}
