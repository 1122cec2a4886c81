package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/llm"
	"github.com/smartinez/hipolito/internal/resolver"
	"github.com/smartinez/hipolito/internal/tutor"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk with Hipólito in a plain terminal loop (no database)",
	Long: `Hold a conversation with Hipólito on stdin/stdout.

This is a stateless mode — no database, no event logging. Useful for
quick checks of the answer rules and for terminals where the full UI
does not fit.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().String("level", "basico", "Comprehension level: basico, intermedio or avanzado")
	chatCmd.Flags().Bool("generative", false, "Use an LLM for answers the rules cannot cover")
}

func runChat(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	generative, _ := cmd.Flags().GetBool("generative")

	level, err := parseLevel(levelVal)
	if err != nil {
		return err
	}

	base, err := knowledge.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "knowledge base degraded:", err)
	}
	res := resolver.New(base)

	// Provider is optional, logging skipped in this mode.
	opts := []tutor.Option{}
	if generative {
		provider, err := llm.NewProviderFromEnv(cmd.Context(), nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		opts = append(opts, tutor.WithProvider(provider))
	}
	tut := tutor.New(res, level, opts...)

	fmt.Println("🐉 ¡Guau guau! Soy Hipólito. Pregúntame sobre mi historia.")
	fmt.Println("   (escribe \"salir\" para terminar)")
	for _, s := range tut.Suggestions() {
		fmt.Println("   •", s)
	}
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
		if isExit(text) {
			fmt.Println("🐉 ¡Hasta pronto! Guau guau.")
			break
		}

		reply := tut.Ask(cmd.Context(), text)
		fmt.Printf("🐉 %s\n\n", reply.Text)
	}
	return scanner.Err()
}

func isExit(text string) bool {
	switch strings.ToLower(text) {
	case "salir", "adios", "adiós", "exit", "quit":
		return true
	}
	return false
}

// parseLevel maps the flag value to a comprehension level.
func parseLevel(val string) (knowledge.Level, error) {
	switch strings.ToLower(val) {
	case "basico", "básico":
		return knowledge.LevelBasic, nil
	case "intermedio":
		return knowledge.LevelIntermediate, nil
	case "avanzado":
		return knowledge.LevelAdvanced, nil
	}
	return "", fmt.Errorf("invalid level %q: must be basico, intermedio or avanzado", val)
}
