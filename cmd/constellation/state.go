package main

import (
	"errors"
	"fmt"
	"os"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/constellation/internal/storage"
	"github.com/garrettladley/constellation/internal/viewstate"
	"github.com/garrettladley/constellation/internal/xslog"
)

func stateCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the saved panel state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := xslog.WithLogger(cmd.Context(), xslog.NewLoggerFromEnv(os.Stderr))

			a, err := bootstrap(ctx, clockFlags{})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			value, err := a.store.Get(ctx, a.cfg.StorageKey)
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("No saved state under %q (%s)\n", a.cfg.StorageKey, a.store.Name())
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read state: %w", err)
			}

			if raw {
				fmt.Println(value)
				return nil
			}

			state, err := viewstate.Decode([]byte(value))
			if err != nil {
				return fmt.Errorf("saved state is unreadable: %w", err)
			}

			out, err := go_json.MarshalIndent(state, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format state: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored value without decoding it")
	return cmd
}
