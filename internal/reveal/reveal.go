package reveal

import "time"

// Interval is the time between reveal steps.
const Interval = 100 * time.Millisecond

// Sequencer progressively reveals stars in list order. It is driven by Tick
// calls from the host's timer; each Start begins a new episode with a new tag
// and ticks carrying any other tag are ignored, which is how a pending timer
// is cancelled.
type Sequencer struct {
	revealing bool
	count     int
	total     int
	tag       int
}

// Start begins a new episode over total stars and returns its tag.
func (s *Sequencer) Start(total int) int {
	s.tag++
	s.revealing = true
	s.count = 0
	s.total = max(total, 0)
	return s.tag
}

// Tick advances the episode identified by tag by one star. It reports
// whether the tick was accepted and whether the episode just completed.
func (s *Sequencer) Tick(tag int) (accepted, done bool) {
	if !s.revealing || tag != s.tag {
		return false, false
	}

	if s.count < s.total {
		s.count++
	}
	if s.count >= s.total {
		s.revealing = false
		return true, true
	}
	return true, false
}

// Reset cancels any running episode and clears the count.
func (s *Sequencer) Reset() {
	s.tag++
	s.revealing = false
	s.count = 0
}

func (s *Sequencer) Revealing() bool { return s.revealing }

func (s *Sequencer) Count() int { return s.count }

func (s *Sequencer) Total() int { return s.total }

// Tag identifies the live episode.
func (s *Sequencer) Tag() int { return s.tag }

// Visible reports whether the star at index i should be drawn.
func (s *Sequencer) Visible(i int) bool {
	return !s.revealing || i < s.count
}
