// Package panel owns the mutable state of the constellation panel.
//
// All state transitions go through Controller. It is not safe for concurrent
// use; the TUI drives it from its single update loop.
package panel

import (
	"context"

	"github.com/garrettladley/constellation/internal/render"
	"github.com/garrettladley/constellation/internal/reveal"
	"github.com/garrettladley/constellation/internal/star"
	"github.com/garrettladley/constellation/internal/viewstate"
	"github.com/garrettladley/constellation/internal/xslog"
)

type Persister interface {
	Load(ctx context.Context) (viewstate.State, bool)
	Save(ctx context.Context, state viewstate.State) error
	Clear(ctx context.Context) error
}

type Generator interface {
	Generate(starsToShow int, completion bool) []star.Star
}

type Controller struct {
	persister Persister
	generator Generator

	open            bool
	stars           []star.Star
	showConnections bool

	hasInputs   bool
	starsToShow int
	completion  bool

	seq reveal.Sequencer
}

// New restores the last saved state, or starts empty with connections hidden.
func New(ctx context.Context, persister Persister, generator Generator) *Controller {
	c := &Controller{
		persister: persister,
		generator: generator,
		stars:     []star.Star{},
	}

	if state, ok := persister.Load(ctx); ok {
		c.stars = state.Stars
		c.showConnections = state.ShowConnections
		xslog.FromContext(ctx).DebugContext(ctx, "restored view state",
			xslog.Count(len(state.Stars)),
			xslog.ShowConnections(state.ShowConnections))
	}

	return c
}

// SetInputs feeds the externally derived progress values. The star list is
// regenerated from scratch and saved whenever either value differs from the
// previous call, and always on the first call.
func (c *Controller) SetInputs(ctx context.Context, starsToShow int, expired bool) {
	if c.hasInputs && c.starsToShow == starsToShow && c.completion == expired {
		return
	}
	c.hasInputs = true
	c.starsToShow = starsToShow
	c.completion = expired
	c.regenerate(ctx)
}

// Regenerate rebuilds the star list from the current inputs. Used when the
// generator's pattern changes underneath the controller.
func (c *Controller) Regenerate(ctx context.Context) {
	if !c.hasInputs {
		return
	}
	c.regenerate(ctx)
}

func (c *Controller) regenerate(ctx context.Context) {
	// a running reveal indexes the old list
	if c.seq.Revealing() {
		c.seq.Reset()
	}
	c.stars = c.generator.Generate(c.starsToShow, c.completion)

	xslog.FromContext(ctx).DebugContext(ctx, "generated stars",
		xslog.Count(len(c.stars)),
		xslog.Completion(c.completion))

	c.save(ctx)
}

func (c *Controller) Open() { c.open = true }

// Close hides the panel and abandons any reveal in progress.
func (c *Controller) Close() {
	c.open = false
	if c.seq.Revealing() {
		c.seq.Reset()
	}
}

func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

func (c *Controller) IsOpen() bool { return c.open }

// ToggleConnections flips line visibility. Outside completion mode it does
// nothing.
func (c *Controller) ToggleConnections(ctx context.Context) {
	if !c.completion {
		return
	}
	c.showConnections = !c.showConnections
	c.save(ctx)
}

// Reveal starts a new reveal episode over the current stars and returns its
// tag. Outside completion mode it does nothing and reports false.
func (c *Controller) Reveal(ctx context.Context) (int, bool) {
	if !c.completion {
		return 0, false
	}
	tag := c.seq.Start(len(c.stars))
	xslog.FromContext(ctx).InfoContext(ctx, "reveal started", xslog.Total(len(c.stars)))
	return tag, true
}

// RevealTick advances the episode identified by tag. When the last star is
// revealed, connections are turned on. It reports whether the episode is
// finished; stale tags report finished so callers stop ticking.
func (c *Controller) RevealTick(ctx context.Context, tag int) bool {
	accepted, done := c.seq.Tick(tag)
	if !accepted {
		return true
	}
	if !done {
		return false
	}

	xslog.FromContext(ctx).InfoContext(ctx, "reveal finished", xslog.Count(c.seq.Count()))
	if !c.showConnections {
		c.showConnections = true
		c.save(ctx)
	}
	return true
}

// ResetAll cancels any reveal, hides connections and deletes the saved state.
// Nothing is written back afterwards, so a later load finds no state.
func (c *Controller) ResetAll(ctx context.Context) {
	c.seq.Reset()
	c.showConnections = false

	if err := c.persister.Clear(ctx); err != nil {
		xslog.FromContext(ctx).ErrorContext(ctx, "failed to clear view state", xslog.Error(err))
		return
	}
	xslog.FromContext(ctx).InfoContext(ctx, "view state reset")
}

// Snapshot is the read-only view the render loop draws from. t is in
// milliseconds.
func (c *Controller) Snapshot(t float64) render.Input {
	return render.Input{
		Time:            t,
		Stars:           c.stars,
		ShowConnections: c.showConnections,
		Completion:      c.completion,
		Revealing:       c.seq.Revealing(),
		Revealed:        c.seq.Count(),
	}
}

func (c *Controller) Stars() []star.Star { return c.stars }

func (c *Controller) ShowConnections() bool { return c.showConnections }

func (c *Controller) Completion() bool { return c.completion }

func (c *Controller) StarsToShow() int { return c.starsToShow }

func (c *Controller) Revealing() bool { return c.seq.Revealing() }

func (c *Controller) Revealed() int { return c.seq.Count() }

func (c *Controller) save(ctx context.Context) {
	state := viewstate.State{
		Stars:           c.stars,
		ShowConnections: c.showConnections,
	}
	if err := c.persister.Save(ctx, state); err != nil {
		xslog.FromContext(ctx).ErrorContext(ctx, "failed to save view state", xslog.Error(err))
	}
}
