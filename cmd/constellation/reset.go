package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/constellation/internal/xslog"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved panel state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := xslog.WithLogger(cmd.Context(), xslog.NewLoggerFromEnv(os.Stderr))

			a, err := bootstrap(ctx, clockFlags{})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.adapter.Clear(ctx); err != nil {
				return err
			}

			fmt.Printf("Cleared %q from %s\n", a.adapter.Key(), a.store.Name())
			return nil
		},
	}
}
