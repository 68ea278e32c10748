package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored learner profiles",
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
		kv := s.KV()

		active := ""
		if raw, found, err := kv.Get(ctx, profile.SessionKey); err == nil && found {
			var p profile.UserProfile
			if json.Unmarshal([]byte(raw), &p) == nil {
				active = p.Identity
			}
		}

		keys, err := kv.Keys(ctx, profile.IdentityKey(""))
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(keys) == 0 {
			fmt.Println("No profiles yet. Run mathpech to create one.")
			return nil
		}

		fmt.Printf("%-28s  %-10s  %-8s  %-7s  %s\n", "Identity", "Class", "XP", "Streak", "Badges")
		fmt.Println(strings.Repeat("─", 72))

		for _, k := range keys {
			raw, found, err := kv.Get(ctx, k)
			if err != nil || !found {
				continue
			}
			var p profile.UserProfile
			if err := json.Unmarshal([]byte(raw), &p); err != nil {
				continue
			}
			identity := p.Identity
			if identity == active {
				identity += " *"
			}
			fmt.Printf("%-28s  %-10s  %-8d  %-7d  %d\n",
				identity, p.Level.Label(), p.XP, p.Streak, len(p.Badges))
		}
		if active != "" {
			fmt.Println("\n* currently logged in")
		}
		return nil
	},
}
