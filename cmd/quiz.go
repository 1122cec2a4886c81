package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/smartinez/hipolito/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play a comprehension quiz in a plain terminal loop (no database)",
	Long: `Answer the story questions on stdin/stdout.

This is a stateless mode — no database, no event logging. The child
plays teacher and Hipólito is the pupil asking the questions.`,
	RunE: runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	m := quiz.NewMachine(quiz.DefaultQuestions())

	fmt.Println("🐉 " + m.Start())
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Tú: ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		resp := m.Submit(text)
		fmt.Printf("🐉 %s\n\n", resp.Text)

		if resp.SessionComplete {
			break
		}
	}
	return scanner.Err()
}
