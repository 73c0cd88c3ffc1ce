package constellation

import (
	"strings"
	"testing"

	"github.com/garrettladley/constellation/internal/tui/components/braille"
	"github.com/garrettladley/constellation/internal/tui/theme"
)

func TestHeadlineAndDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		state        State
		wantHeadline string
		wantDetail   string
	}{
		{
			name:         "first day",
			state:        State{Day: 1, StarsToShow: 1, TotalDays: 16},
			wantHeadline: "Day 1 of 16",
			wantDetail:   "1 star in your constellation",
		},
		{
			name:         "later day",
			state:        State{Day: 9, StarsToShow: 9, TotalDays: 16},
			wantHeadline: "Day 9 of 16",
			wantDetail:   "9 stars in your constellation",
		},
		{
			name:         "completion",
			state:        State{Completion: true, Name: "SAMRIDDHI", StarsToShow: 16, TotalDays: 16},
			wantHeadline: "✨ SAMRIDDHI ✨",
			wantDetail:   "Your name written in the stars - Happy Birthday!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Headline(tt.state); got != tt.wantHeadline {
				t.Errorf("Headline() = %q, want %q", got, tt.wantHeadline)
			}
			if got := Detail(tt.state); got != tt.wantDetail {
				t.Errorf("Detail() = %q, want %q", got, tt.wantDetail)
			}
		})
	}
}

func TestStarIcons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "★"},
		{5, "★★★★★"},
		{6, "★★★★★ +1"},
		{16, "★★★★★ +11"},
	}

	for _, tt := range tests {
		if got := StarIcons(tt.n); got != tt.want {
			t.Errorf("StarIcons(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		collected int
		total     int
		width     int
		want      string
	}{
		{"empty", 0, 16, 8, "░░░░░░░░"},
		{"half", 8, 16, 8, "████░░░░"},
		{"full", 16, 16, 8, "████████"},
		{"overflow", 20, 16, 4, "████"},
		{"no total", 3, 0, 4, "░░░░"},
		{"no width", 3, 16, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ProgressBar(tt.collected, tt.total, tt.width); got != tt.want {
				t.Errorf("ProgressBar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyHints(t *testing.T) {
	t.Parallel()

	if got := KeyHints(State{}); strings.Contains(got, "reveal") || strings.Contains(got, "lines") {
		t.Errorf("progress mode advertises completion keys: %q", got)
	}
	if got := KeyHints(State{Completion: true}); !strings.Contains(got, "r reveal") || !strings.Contains(got, "c show lines") {
		t.Errorf("completion hints = %q", got)
	}
	if got := KeyHints(State{Completion: true, ShowConnections: true, Revealing: true}); strings.Contains(got, "reveal") || !strings.Contains(got, "c hide lines") {
		t.Errorf("revealing hints = %q", got)
	}
}

func TestView_Sections(t *testing.T) {
	t.Parallel()

	sky := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 40)+"\n", 10), "\n")

	progress := braille.StripAnsi(View(theme.New(), State{Day: 2, StarsToShow: 2, TotalDays: 16}, sky, 100, 40))
	for _, want := range []string{"Constellation Builder", "Day 2 of 16", "2/16 stars"} {
		if !strings.Contains(progress, want) {
			t.Errorf("progress view is missing %q", want)
		}
	}

	done := braille.StripAnsi(View(theme.New(), State{Completion: true, Name: "SAMRIDDHI", StarsToShow: 16, TotalDays: 16}, sky, 100, 40))
	for _, want := range []string{"Your Personal Constellation", "Constellation Complete!"} {
		if !strings.Contains(done, want) {
			t.Errorf("completion view is missing %q", want)
		}
	}
	if strings.Contains(done, "Constellation Progress") {
		t.Error("completion view shows the progress section")
	}
}
