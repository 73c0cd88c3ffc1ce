// Package tick provides cancellable recurring timers for bubbletea programs.
//
// Every Start issues a new tag. Messages carrying an older tag, or addressed to
// another loop, are rejected by Accept, so a stopped loop can never mutate
// state even if one of its messages is still in flight.
package tick

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Msg is delivered each time a loop fires.
type Msg struct {
	ID   int
	Tag  int
	Time time.Time
}

type Loop struct {
	id       int
	tag      int
	active   bool
	interval time.Duration
}

func New(interval time.Duration) *Loop {
	return &Loop{
		id:       nextID(),
		interval: interval,
	}
}

func (l *Loop) ID() int { return l.id }

func (l *Loop) Tag() int { return l.tag }

func (l *Loop) Active() bool { return l.active }

func (l *Loop) Interval() time.Duration { return l.interval }

// Start (re)arms the loop under a fresh tag.
func (l *Loop) Start() tea.Cmd {
	l.tag++
	l.active = true
	return l.schedule()
}

// Stop disarms the loop. Messages already scheduled are dropped on arrival.
func (l *Loop) Stop() {
	l.tag++
	l.active = false
}

// Accept reports whether msg belongs to the live run of this loop and, if so,
// returns the command that schedules the next firing.
func (l *Loop) Accept(msg Msg) (tea.Cmd, bool) {
	if !l.active || msg.ID != l.id || msg.Tag != l.tag {
		return nil, false
	}
	return l.schedule(), true
}

func (l *Loop) schedule() tea.Cmd {
	id, tag := l.id, l.tag
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return Msg{ID: id, Tag: tag, Time: t}
	})
}
