package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/constellation/internal/version"
)

func main() {
	_ = godotenv.Load()

	var f clockFlags

	rootCmd := &cobra.Command{
		Use:     "constellation",
		Short:   "A star for every day, until the name appears",
		Version: version.Get(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), f)
		},
	}
	f.register(rootCmd)

	rootCmd.AddCommand(snapshotCmd(&f))
	rootCmd.AddCommand(stateCmd())
	rootCmd.AddCommand(resetCmd())
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
