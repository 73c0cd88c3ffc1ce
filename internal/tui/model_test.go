package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garrettladley/constellation/internal/countdown"
	"github.com/garrettladley/constellation/internal/panel"
	"github.com/garrettladley/constellation/internal/pattern"
	"github.com/garrettladley/constellation/internal/star"
	"github.com/garrettladley/constellation/internal/starfield"
	"github.com/garrettladley/constellation/internal/storage"
	"github.com/garrettladley/constellation/internal/tick"
	"github.com/garrettladley/constellation/internal/tui/components/braille"
	"github.com/garrettladley/constellation/internal/tui/page/splash"
	"github.com/garrettladley/constellation/internal/viewstate"
	"github.com/garrettladley/constellation/internal/xslog"
)

var start = time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, expired bool) (*Model, *viewstate.Adapter) {
	t.Helper()

	var (
		ctx     = xslog.WithLogger(context.Background(), xslog.Discard())
		store   = storage.NewMemoryStore()
		adapter = viewstate.New(store, "test")
		gen     = starfield.NewSeeded(42, pattern.Catalog())
		now     = start.Add(4 * 24 * time.Hour)
		cd      = countdown.New(countdown.Deadline(start, starfield.TotalDays))
	)
	if expired {
		cd = countdown.Expired()
	}

	m := New(Deps{
		Ctx:           ctx,
		Controller:    panel.New(ctx, adapter, gen),
		Generator:     gen,
		Countdown:     cd,
		Store:         store,
		Now:           func() time.Time { return now },
		StartDate:     start,
		TotalDays:     starfield.TotalDays,
		Name:          pattern.DefaultName,
		FrameInterval: time.Millisecond,
	})

	m.refreshInputs()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m.Update(splash.TickMsg{})
	return &m, adapter
}

func TestModel_InputsFromClock(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)

	assert.Equal(t, 5, m.day)
	assert.Equal(t, 5, m.deps.Controller.StarsToShow())
	assert.Len(t, m.deps.Controller.Stars(), 5)
	assert.False(t, m.deps.Controller.Completion())
}

func TestModel_OpenClose(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)

	require.NotNil(t, m.handleKey("enter"))
	require.True(t, m.deps.Controller.IsOpen())
	require.True(t, m.frames.Active())
	assert.NotEmpty(t, m.skyView)

	live := tick.Msg{ID: m.frames.ID(), Tag: m.frames.Tag()}
	assert.NotNil(t, m.handleTick(live), "live frame tick should re-arm")

	m.handleKey("esc")
	assert.False(t, m.deps.Controller.IsOpen())
	assert.False(t, m.frames.Active())
	assert.Nil(t, m.handleTick(live), "frame tick after close must be dropped")

	// reopening starts a fresh run that ignores the old tag
	m.handleKey("o")
	assert.Nil(t, m.handleTick(live))
}

func TestModel_RevealRequiresCompletion(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)
	m.handleKey("enter")

	assert.Nil(t, m.handleKey("r"))
	assert.False(t, m.reveals.Active())

	m.handleKey("c")
	assert.False(t, m.deps.Controller.ShowConnections())
}

func TestModel_RevealRunsToCompletion(t *testing.T) {
	t.Parallel()

	m, adapter := newTestModel(t, true)
	m.handleKey("enter")
	require.NotNil(t, m.handleKey("r"))
	require.True(t, m.deps.Controller.Revealing())

	n := len(m.deps.Controller.Stars())
	for i := 0; i < n && m.reveals.Active(); i++ {
		m.handleTick(tick.Msg{ID: m.reveals.ID(), Tag: m.reveals.Tag()})
		require.LessOrEqual(t, m.deps.Controller.Revealed(), n)
	}

	assert.False(t, m.reveals.Active())
	assert.False(t, m.deps.Controller.Revealing())
	assert.Equal(t, n, m.deps.Controller.Revealed())
	assert.True(t, m.deps.Controller.ShowConnections())

	saved, ok := adapter.Load(m.deps.Ctx)
	require.True(t, ok)
	assert.True(t, saved.ShowConnections)
}

func TestModel_ResetMidReveal(t *testing.T) {
	t.Parallel()

	m, adapter := newTestModel(t, true)
	m.handleKey("enter")
	m.handleKey("r")

	stale := tick.Msg{ID: m.reveals.ID(), Tag: m.reveals.Tag()}
	m.handleTick(stale)
	m.handleTick(tick.Msg{ID: m.reveals.ID(), Tag: m.reveals.Tag()})

	m.handleKey("R")

	assert.False(t, m.reveals.Active())
	assert.Zero(t, m.deps.Controller.Revealed())
	assert.False(t, m.deps.Controller.ShowConnections())
	assert.Nil(t, m.handleTick(stale))

	_, ok := adapter.Load(m.deps.Ctx)
	assert.False(t, ok)
}

func TestModel_PatternReload(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, true)

	stars := []star.Star{{X: 10, Y: 10, Size: 4, Brightness: 1}, {X: 60, Y: 10, Size: 4, Brightness: 1}}
	m.Update(PatternMsg{Change: pattern.Change{Pattern: pattern.Pattern{Name: "AB", Stars: stars}}})
	assert.Equal(t, stars, m.deps.Controller.Stars())

	// a failed reload keeps the current pattern
	m.Update(PatternMsg{Change: pattern.Change{Err: assert.AnError}})
	assert.Equal(t, stars, m.deps.Controller.Stars())
}

func TestModel_StoreStatus(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)
	assert.False(t, m.store.Checked)

	m.Update(StoreStatusMsg{Backend: "memory"})
	assert.True(t, m.store.Checked)
	assert.True(t, m.store.Healthy)

	m.Update(StoreStatusMsg{Backend: "memory", Err: assert.AnError})
	assert.False(t, m.store.Healthy)
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)

	closed := braille.StripAnsi(m.content())
	assert.True(t, strings.Contains(closed, "5 stars collected"), "closed view:\n%s", closed)

	m.handleKey("enter")
	open := braille.StripAnsi(m.content())
	assert.True(t, strings.Contains(open, "Day 5 of 16"), "open view:\n%s", open)
	assert.True(t, strings.Contains(open, "Constellation Builder"))
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, true)
	m.handleKey("enter")
	m.handleKey("r")

	cmd := m.handleKey("q")
	require.NotNil(t, cmd)
	assert.False(t, m.frames.Active())
	assert.False(t, m.reveals.Active())
	assert.False(t, m.clock.Active())
}
