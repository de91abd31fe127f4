package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCorruptSlot marks slot content that exists but cannot be decoded
// into a line sequence. Callers discard the slot on this error; any other
// Load failure is a transport problem and the slot must be assumed
// intact.
var ErrCorruptSlot = errors.New("corrupt cart slot")

// slotClient is the narrow key-value surface the cart needs from
// pkg/redis.Client.
type slotClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CartKey(sessionID string) string
}

// Store round-trips a session's cart lines to a single named slot.
// Writes are best-effort: the in-memory cart is authoritative for the
// session and the slot only feeds the next rehydration.
type Store struct {
	client slotClient
	ttl    time.Duration
}

// NewStore binds the store to the provided slot client.
func NewStore(client slotClient, ttl time.Duration) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("slot client required")
	}
	return &Store{client: client, ttl: ttl}, nil
}

// Load reads the session's slot. A missing slot yields an empty line
// sequence with no error. Malformed or wrong-shaped content returns
// ErrCorruptSlot so the caller can log and fall back to an empty cart;
// transport failures return plain errors.
func (s *Store) Load(ctx context.Context, sessionID string) ([]Line, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cart slot: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSlot, err)
	}

	return sanitizeLines(lines), nil
}

// Save serializes the line sequence into the slot. An empty sequence is
// written as an explicit empty array so a stale snapshot cannot linger.
func (s *Store) Save(ctx context.Context, sessionID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding cart slot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("writing cart slot: %w", err)
	}
	return nil
}

// sanitizeLines validates decoded content instead of trusting it: lines
// without a product id are dropped and quantities below one clamp to one.
func sanitizeLines(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" {
			continue
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		out = append(out, line)
	}
	return out
}
