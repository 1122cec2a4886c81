package cmd

import (
	"fmt"
	"os"

	"github.com/smartinez/hipolito/internal/app"
	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/llm"
	"github.com/smartinez/hipolito/internal/quiz"
	"github.com/smartinez/hipolito/internal/resolver"
	"github.com/smartinez/hipolito/internal/store"
	"github.com/smartinez/hipolito/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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
	eventRepo := st.EventRepo()

	base, err := knowledge.LoadDefault()
	if err != nil {
		// The fallback base still answers, so the app keeps running.
		fmt.Fprintln(os.Stderr, "knowledge base degraded:", err)
	}
	res := resolver.New(base)

	opts := []tutor.Option{}
	if cfg.Chat.Generative {
		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Generated replies will be unavailable.")
		} else {
			opts = append(opts, tutor.WithProvider(provider))
		}
	}
	tut := tutor.New(res, cfg.Level(), opts...)

	return app.Run(app.Deps{
		Tutor:     tut,
		Questions: quiz.DefaultQuestions(),
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
	})
}
