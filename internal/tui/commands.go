package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/constellation/internal/pattern"
	"github.com/garrettladley/constellation/internal/storage"
)

func pingStoreCmd(ctx context.Context, store storage.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return StoreStatusMsg{Backend: store.Name(), Err: store.Ping(ctx)}
	}
}

// listenPatternCmd waits for the next reload from the watcher. It must be
// re-issued after every PatternMsg to keep listening.
func listenPatternCmd(ctx context.Context, w *pattern.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case change, ok := <-w.Changes:
			if !ok {
				return PatternWatchClosedMsg{}
			}
			return PatternMsg{Change: change}
		case <-ctx.Done():
			return PatternWatchClosedMsg{}
		}
	}
}
