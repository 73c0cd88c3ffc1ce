package viewstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/constellation/internal/star"
	"github.com/garrettladley/constellation/internal/storage"
	"github.com/garrettladley/constellation/internal/xslog"
)

// State is the part of the panel that survives restarts.
type State struct {
	Stars           []star.Star `json:"stars"`
	ShowConnections bool        `json:"showConnections"`
	// Timestamp records the last save; it is informational only.
	Timestamp time.Time `json:"timestamp"`
}

// wire mirrors State with optional fields so structurally invalid documents
// can be told apart from valid ones with zero values.
type wire struct {
	Stars           []wireStar `json:"stars"`
	ShowConnections *bool      `json:"showConnections"`
	Timestamp       string     `json:"timestamp"`
}

type wireStar struct {
	X            *float64 `json:"x"`
	Y            *float64 `json:"y"`
	Size         *float64 `json:"size"`
	Brightness   *float64 `json:"brightness"`
	TwinkleDelay *float64 `json:"twinkleDelay"`
	IsNameStar   *bool    `json:"isNameStar,omitempty"`
}

var errMalformed = errors.New("malformed view state")

// Adapter loads and saves State under one fixed key.
type Adapter struct {
	store storage.Store
	key   string
	now   func() time.Time
}

type Option func(*Adapter)

func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		a.now = now
	}
}

func New(store storage.Store, key string, opts ...Option) *Adapter {
	a := &Adapter{
		store: store,
		key:   key,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Key() string {
	return a.key
}

// Load returns the saved state. Missing, unreadable or malformed data all
// yield false; the reason is logged and never returned.
func (a *Adapter) Load(ctx context.Context) (State, bool) {
	logger := xslog.FromContext(ctx)

	raw, err := a.store.Get(ctx, a.key)
	if errors.Is(err, storage.ErrNotFound) {
		return State{}, false
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to read view state",
			xslog.StoreGroup(a.store.Name(), a.key),
			xslog.Error(err))
		return State{}, false
	}

	state, err := Decode([]byte(raw))
	if err != nil {
		logger.WarnContext(ctx, "ignoring stored view state",
			xslog.StoreGroup(a.store.Name(), a.key),
			xslog.Error(err))
		return State{}, false
	}

	return state, true
}

// Save stamps the state with the current time and overwrites the key.
func (a *Adapter) Save(ctx context.Context, state State) error {
	state.Timestamp = a.now().UTC()

	data, err := Encode(state)
	if err != nil {
		return err
	}

	if err := a.store.Set(ctx, a.key, string(data)); err != nil {
		return fmt.Errorf("failed to save view state: %w", err)
	}
	return nil
}

// Clear removes the key. Clearing an absent key succeeds.
func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("failed to clear view state: %w", err)
	}
	return nil
}

func Encode(state State) ([]byte, error) {
	if state.Stars == nil {
		state.Stars = []star.Star{}
	}
	data, err := go_json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view state: %w", err)
	}
	return data, nil
}

// Decode parses a stored document. Absent "stars" or "showConnections" fall
// back to their defaults; a star missing any numeric field, or a value of the
// wrong type, makes the whole document malformed.
func Decode(data []byte) (State, error) {
	var w wire
	if err := go_json.Unmarshal(data, &w); err != nil {
		return State{}, fmt.Errorf("%w: %w", errMalformed, err)
	}

	state := State{Stars: make([]star.Star, 0, len(w.Stars))}
	if w.ShowConnections != nil {
		state.ShowConnections = *w.ShowConnections
	}
	if w.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339Nano, w.Timestamp); err == nil {
			state.Timestamp = ts
		}
	}

	for i, ws := range w.Stars {
		if ws.X == nil || ws.Y == nil || ws.Size == nil || ws.Brightness == nil || ws.TwinkleDelay == nil {
			return State{}, fmt.Errorf("%w: star %d is missing a field", errMalformed, i)
		}
		state.Stars = append(state.Stars, star.Star{
			X:            *ws.X,
			Y:            *ws.Y,
			Size:         *ws.Size,
			Brightness:   *ws.Brightness,
			TwinkleDelay: *ws.TwinkleDelay,
			IsNameStar:   ws.IsNameStar,
		})
	}

	return state, nil
}
