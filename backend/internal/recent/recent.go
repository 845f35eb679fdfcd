package recent

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"aitools/backend/internal/constants"
	"aitools/backend/pkg/logger"
)

// Store persists one ordered list of tool ids per client
type Store interface {
	Get(ctx context.Context, clientID string) ([]string, error)
	Set(ctx context.Context, clientID string, ids []string) error
}

// Push returns list with id moved to the front, duplicates removed and the
// result capped at max entries. list is not modified.
func Push(list []string, id string, max int) []string {
	if max <= 0 {
		return []string{}
	}
	out := make([]string, 0, max)
	out = append(out, id)
	for _, existing := range list {
		if len(out) == max {
			break
		}
		if existing == id {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// Tracker maintains the most-recently-used tools of each client
type Tracker struct {
	mu     sync.Mutex
	store  Store
	max    int
	logger *zap.Logger
}

// Option configures a Tracker
type Option func(*Tracker)

// WithMax overrides the list capacity
func WithMax(max int) Option {
	return func(t *Tracker) {
		if max > 0 {
			t.max = max
		}
	}
}

// NewTracker creates a tracker over store
func NewTracker(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		max:    constants.MaxRecentTools,
		logger: logger.Get(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record marks toolID as just used by clientID and returns the updated list
func (t *Tracker) Record(ctx context.Context, clientID, toolID string) ([]string, error) {
	toolID = strings.TrimSpace(toolID)
	if toolID == "" {
		return t.List(ctx, clientID)
	}

	// Serializes the read-modify-write against concurrent records
	t.mu.Lock()
	defer t.mu.Unlock()

	current, err := t.store.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	updated := Push(current, toolID, t.max)
	if err := t.store.Set(ctx, clientID, updated); err != nil {
		return nil, err
	}

	t.logger.Debug("Recorded recent tool",
		zap.String("client_id", clientID),
		zap.String("tool_id", toolID),
		zap.Int("count", len(updated)),
	)
	return updated, nil
}

// List returns the client's recent tools, most recent first
func (t *Tracker) List(ctx context.Context, clientID string) ([]string, error) {
	ids, err := t.store.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(ids) > t.max {
		ids = ids[:t.max]
	}
	return append([]string{}, ids...), nil
}

// Clear forgets every recent tool of the client
func (t *Tracker) Clear(ctx context.Context, clientID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Set(ctx, clientID, []string{})
}
