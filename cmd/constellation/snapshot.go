package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/constellation/internal/panel"
	"github.com/garrettladley/constellation/internal/render"
	"github.com/garrettladley/constellation/internal/tui/components/sky"
	"github.com/garrettladley/constellation/internal/tui/page/constellation"
	"github.com/garrettladley/constellation/internal/tui/theme"
	"github.com/garrettladley/constellation/internal/xslog"
)

func snapshotCmd(f *clockFlags) *cobra.Command {
	var (
		cols int
		rows int
		at   float64
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print a single frame of today's sky",
		Long:  "Renders one frame of the star field to stdout without starting the interactive UI.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := xslog.WithLogger(cmd.Context(), xslog.NewLoggerFromEnv(os.Stderr))
			return runSnapshot(ctx, *f, cols, rows, at)
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 80, "width of the sky in terminal cells")
	cmd.Flags().IntVar(&rows, "rows", 24, "height of the sky in terminal cells")
	cmd.Flags().Float64Var(&at, "time", 0, "animation time in milliseconds, controls twinkle phase")

	return cmd
}

func runSnapshot(ctx context.Context, f clockFlags, cols, rows int, at float64) error {
	a, err := bootstrap(ctx, f)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	days, starsToShow, expired := a.inputs()

	ctrl := panel.New(ctx, a.adapter, a.generator)
	ctrl.SetInputs(ctx, starsToShow, expired)

	t := theme.New()
	surface := sky.New(cols, rows, t.Background())
	render.Frame(surface, ctrl.Snapshot(at))

	state := constellation.State{
		Completion:  expired,
		Name:        a.name,
		Day:         days + 1,
		StarsToShow: starsToShow,
		TotalDays:   a.cfg.TotalDays,
	}

	fmt.Println(t.Title().Render(constellation.Title(expired)))
	fmt.Println(surface.Render())
	fmt.Println(constellation.Headline(state) + "  " + constellation.StarIcons(starsToShow))
	fmt.Println(constellation.Detail(state))
	return nil
}
