package pattern

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.toml")
	if err := os.WriteFile(path, []byte(orion), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	updated := orion + "\n[[star]]\nx = 140\ny = 90\nsize = 5\nbrightness = 0.7\n"
	if err := os.WriteFile(path, []byte(updated), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Changes:
		if c.Err != nil {
			t.Fatalf("Change.Err = %v", c.Err)
		}
		if len(c.Pattern.Stars) != 3 {
			t.Errorf("len(Stars) = %d, want 3", len(c.Pattern.Stars))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "pattern.toml"))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	w.Stop()
	w.Stop()

	if _, ok := <-w.Changes; ok {
		t.Error("Changes should be closed after Stop")
	}
}
