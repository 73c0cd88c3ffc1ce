package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/constellation/internal/config"
	"github.com/garrettladley/constellation/internal/paths"
	"github.com/garrettladley/constellation/internal/storage"
	"github.com/garrettladley/constellation/internal/viewstate"
)

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Summarize the saved panel state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			url := cfg.StoreURL
			if url == "" {
				if url, err = paths.DefaultStoreURL(); err != nil {
					return fmt.Errorf("failed to get database path: %w", err)
				}
			}

			store, err := storage.Open(ctx, url)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer func() {
				_ = store.Close()
			}()

			state, ok := viewstate.New(store, cfg.StorageKey).Load(ctx)
			if !ok {
				fmt.Printf("Status:      EMPTY (nothing usable under %q)\n", cfg.StorageKey)
				return nil
			}

			fmt.Printf("Backend:     %s\n", store.Name())
			fmt.Printf("Key:         %s\n", cfg.StorageKey)
			fmt.Printf("Stars:       %d\n", len(state.Stars))
			fmt.Printf("Connections: %t\n", state.ShowConnections)
			if state.Timestamp.IsZero() {
				fmt.Printf("Saved:       unknown\n")
			} else {
				fmt.Printf("Saved:       %s (%s ago)\n",
					state.Timestamp.Format(time.RFC3339),
					time.Since(state.Timestamp).Round(time.Second))
			}

			return nil
		},
	}
}
