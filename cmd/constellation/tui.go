package main

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/constellation/internal/panel"
	"github.com/garrettladley/constellation/internal/paths"
	"github.com/garrettladley/constellation/internal/pattern"
	"github.com/garrettladley/constellation/internal/session"
	"github.com/garrettladley/constellation/internal/tui"
	"github.com/garrettladley/constellation/internal/xslog"
)

func runTUI(ctx context.Context, f clockFlags) error {
	if _, err := paths.EnsureDir(); err != nil {
		return err
	}
	logPath, err := paths.Log()
	if err != nil {
		return err
	}
	logger, logFile, err := xslog.NewFileLogger(logPath, xslog.FromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	ctx = xslog.WithLogger(ctx, logger)
	ctx = xslog.WithAttrs(ctx, xslog.SessionID(session.NewID()), xslog.Version())
	logger = xslog.FromContext(ctx)
	started := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a, err := bootstrap(ctx, f)
	if err != nil {
		logger.ErrorContext(ctx, "startup failed", xslog.Error(err))
		return err
	}
	defer func() { _ = a.Close() }()

	var watcher *pattern.Watcher
	if a.cfg.PatternFile != "" {
		if watcher, err = pattern.NewWatcher(a.cfg.PatternFile); err != nil {
			return fmt.Errorf("failed to watch pattern file: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to watch pattern file: %w", err)
		}
		defer watcher.Stop()
		logger.InfoContext(ctx, "watching pattern file", xslog.Path(a.cfg.PatternFile))
	}

	logger.InfoContext(ctx, "starting",
		xslog.Backend(a.store.Name()),
		xslog.Key(a.cfg.StorageKey),
		xslog.Deadline(a.countdown.Deadline()))

	model := tui.New(tui.Deps{
		Ctx:           ctx,
		Controller:    panel.New(ctx, a.adapter, a.generator),
		Generator:     a.generator,
		Countdown:     a.countdown,
		Store:         a.store,
		Watcher:       watcher,
		Now:           a.now,
		StartDate:     a.cfg.StartDate.Time,
		TotalDays:     a.cfg.TotalDays,
		Name:          a.name,
		FrameInterval: a.cfg.FrameInterval,
	})

	p := tea.NewProgram(&model)

	if _, err := p.Run(); err != nil {
		logger.ErrorContext(ctx, "tui exited with error", xslog.ErrorGroup(err))
		return err
	}

	logger.InfoContext(ctx, "exiting", xslog.Duration(time.Since(started)))
	return nil
}
