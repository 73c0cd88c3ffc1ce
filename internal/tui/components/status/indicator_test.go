package status

import (
	"testing"

	"github.com/garrettladley/constellation/internal/tui/components/braille"
)

func TestIndicator_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Indicator
		want string
	}{
		{"unchecked", Indicator{Backend: "sqlite"}, "● checking..."},
		{"healthy", Indicator{Checked: true, Healthy: true, Backend: "sqlite"}, "● sqlite"},
		{"down", Indicator{Checked: true, Backend: "redis"}, "● redis unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := braille.StripAnsi(tt.in.Render()); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
