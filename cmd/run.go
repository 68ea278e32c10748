package cmd

import (
	"fmt"
	"os"

	"github.com/mathpech/mathpech/internal/app"
	"github.com/mathpech/mathpech/internal/llm"
	"github.com/mathpech/mathpech/internal/mathtext"
	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/store"
	"github.com/mathpech/mathpech/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
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

	profiles := profile.NewStore(st.KV())
	if err := profiles.Rehydrate(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	opts := app.Options{
		Profiles: profiles,
		Renderer: mathtext.NewRenderer(mathtext.UnicodeTypesetter{}),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
	}

	return app.Run(opts)
}
