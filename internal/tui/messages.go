package tui

import (
	"time"

	"github.com/garrettladley/constellation/internal/pattern"
)

const (
	clockInterval = time.Second
	pingTimeout   = 2 * time.Second
)

type StoreStatusMsg struct {
	Backend string
	Err     error
}

type PatternMsg struct {
	Change pattern.Change
}

// PatternWatchClosedMsg means the watcher stopped and no more changes arrive.
type PatternWatchClosedMsg struct{}
