package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/constellation/internal/config"
	"github.com/garrettladley/constellation/internal/countdown"
	"github.com/garrettladley/constellation/internal/paths"
	"github.com/garrettladley/constellation/internal/pattern"
	"github.com/garrettladley/constellation/internal/starfield"
	"github.com/garrettladley/constellation/internal/storage"
	"github.com/garrettladley/constellation/internal/viewstate"
	"github.com/garrettladley/constellation/internal/xslog"
)

// clockFlags let demos jump ahead without waiting for the calendar.
type clockFlags struct {
	expired bool
	now     string
}

func (f *clockFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&f.expired, "expired", false, "treat the countdown as finished")
	cmd.PersistentFlags().StringVar(&f.now, "now", "", "pretend the current time is this date (YYYY-MM-DD or RFC3339)")
}

// clock returns the wall clock, shifted so it starts at --now when set.
func (f clockFlags) clock() (func() time.Time, error) {
	if f.now == "" {
		return time.Now, nil
	}

	fixed, err := time.ParseInLocation(time.DateOnly, f.now, time.UTC)
	if err != nil {
		if fixed, err = time.Parse(time.RFC3339, f.now); err != nil {
			return nil, fmt.Errorf("invalid --now %q: %w", f.now, err)
		}
	}

	started := time.Now()
	return func() time.Time {
		return fixed.Add(time.Since(started))
	}, nil
}

type app struct {
	cfg       config.Config
	store     storage.Store
	adapter   *viewstate.Adapter
	pattern   pattern.Pattern
	generator *starfield.Generator
	countdown *countdown.Countdown
	now       func() time.Time
	name      string
}

func (a *app) Close() error {
	return a.store.Close()
}

// bootstrap reads the config, then opens the store and loads the pattern file
// concurrently.
func bootstrap(ctx context.Context, f clockFlags) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	now, err := f.clock()
	if err != nil {
		return nil, err
	}

	storeURL := cfg.StoreURL
	if storeURL == "" {
		if _, err := paths.EnsureDir(); err != nil {
			return nil, err
		}
		if storeURL, err = paths.DefaultStoreURL(); err != nil {
			return nil, err
		}
	}

	var (
		store storage.Store
		pat   pattern.Pattern
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := storage.Open(gctx, storeURL)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		store = s
		return nil
	})
	g.Go(func() error {
		p, err := pattern.LoadFile(cfg.PatternFile)
		if err != nil {
			return fmt.Errorf("failed to load pattern: %w", err)
		}
		pat = p
		return nil
	})
	if err := g.Wait(); err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, err
	}

	xslog.FromContext(ctx).DebugContext(ctx, "bootstrapped",
		xslog.Backend(store.Name()),
		xslog.Count(len(pat.Stars)))

	cd := countdown.New(countdown.Deadline(cfg.StartDate.Time, cfg.TotalDays))
	if f.expired {
		cd = countdown.Expired()
	}

	gen := starfield.New(nil, pat.Stars)
	if cfg.Seed != 0 {
		gen = starfield.NewSeeded(cfg.Seed, pat.Stars)
	}

	name := cfg.Name
	if cfg.PatternFile != "" && pat.Name != "" {
		name = pat.Name
	}

	return &app{
		cfg:       cfg,
		store:     store,
		adapter:   viewstate.New(store, cfg.StorageKey),
		pattern:   pat,
		generator: gen,
		countdown: cd,
		now:       now,
		name:      name,
	}, nil
}

// inputs derives today's star count and expiry.
func (a *app) inputs() (days, starsToShow int, expired bool) {
	now := a.now()
	days = starfield.DaysSince(a.cfg.StartDate.Time, now)
	return days, starfield.StarsToShow(days, a.cfg.TotalDays), a.countdown.Expired(now)
}
