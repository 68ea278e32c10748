package cmd

import (
	"context"
	"fmt"

	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learner profiles and the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This erases every profile (XP, streaks, badges). Re-run with --force to confirm.")
			return nil
		}

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
		kv := s.KV()

		keys, err := kv.Keys(ctx, profile.IdentityKey(""))
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		for _, k := range keys {
			if err := kv.Delete(ctx, k); err != nil {
				return fmt.Errorf("delete %s: %w", k, err)
			}
		}
		if err := kv.Delete(ctx, profile.SessionKey); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}

		fmt.Printf("Removed %d profile(s).\n", len(keys))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
