package countdown

import (
	"testing"
	"time"
)

var start = time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)

func TestDeadline(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	if got := Deadline(start, 16); !got.Equal(want) {
		t.Errorf("Deadline() = %v, want %v", got, want)
	}
	if got := Deadline(start, 0); !got.Equal(start) {
		t.Errorf("Deadline(0 days) = %v, want %v", got, start)
	}
}

func TestCountdown_OneWay(t *testing.T) {
	t.Parallel()

	c := New(Deadline(start, 16))

	if c.Expired(start) {
		t.Fatal("expired at start")
	}
	if got := c.Remaining(start); got != 15*24*time.Hour {
		t.Errorf("Remaining() = %v, want 360h", got)
	}

	if !c.Expired(c.Deadline()) {
		t.Fatal("not expired at deadline")
	}

	// clock skew must not un-expire
	if !c.Expired(start) {
		t.Error("countdown un-expired when the clock moved back")
	}
	if got := c.Remaining(start); got != 0 {
		t.Errorf("Remaining() after expiry = %v, want 0", got)
	}
}

func TestExpired(t *testing.T) {
	t.Parallel()

	if !Expired().Expired(time.Time{}) {
		t.Error("Expired() countdown reports not expired")
	}
}
