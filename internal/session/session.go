package session

import "github.com/google/uuid"

// NewID returns a random identifier for one interactive run; it is attached to
// every log line the run writes.
func NewID() string {
	return uuid.NewString()
}
