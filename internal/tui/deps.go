package tui

import (
	"context"
	"time"

	"github.com/garrettladley/constellation/internal/countdown"
	"github.com/garrettladley/constellation/internal/panel"
	"github.com/garrettladley/constellation/internal/pattern"
	"github.com/garrettladley/constellation/internal/star"
	"github.com/garrettladley/constellation/internal/storage"
)

type PatternSetter interface {
	SetPattern(stars []star.Star)
}

type Deps struct {
	Ctx        context.Context
	Controller *panel.Controller
	Generator  PatternSetter
	Countdown  *countdown.Countdown
	Store      storage.Store
	Watcher    *pattern.Watcher // nil when no pattern file is configured

	// Now is the wall clock; tests and --now replace it.
	Now           func() time.Time
	StartDate     time.Time
	TotalDays     int
	Name          string
	FrameInterval time.Duration
}
