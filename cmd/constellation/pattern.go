//go:build !release

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/constellation/internal/pattern"
	"github.com/garrettladley/constellation/internal/validator"
)

func patternCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Print a completion pattern as TOML",
		Long:  "Writes the built-in pattern (or the one in --file, after validation) as a TOML document usable as PATTERN_FILE.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pattern.LoadFile(file)
			if err != nil {
				return err
			}
			if err := validator.Validate(p); err != nil {
				return err
			}

			out, err := pattern.Marshal(p)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(out); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "%d stars\n", len(p.Stars))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "pattern file to validate and print")
	return cmd
}
