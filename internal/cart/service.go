package cart

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kanzcollective/storefront-backend/internal/catalog"
	pkgerrors "github.com/kanzcollective/storefront-backend/pkg/errors"
	"github.com/kanzcollective/storefront-backend/pkg/logger"
)

// DefaultMaxSessions bounds the in-memory session cache when no explicit
// limit is configured.
const DefaultMaxSessions = 10000

// Service orchestrates cart transitions for browsing sessions: rehydrate
// the slot on first touch, apply the transition in memory, then persist
// the new line sequence.
type Service interface {
	Get(ctx context.Context, sessionID string) (State, error)
	Add(ctx context.Context, sessionID, productID string) (State, error)
	Remove(ctx context.Context, sessionID, productID string) (State, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (State, error)
	Clear(ctx context.Context, sessionID string) (State, error)
	Toggle(ctx context.Context, sessionID string) (State, error)
}

type productResolver interface {
	GetProduct(ctx context.Context, id string) (*catalog.ProductDTO, error)
}

type slotStore interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
}

type sessionEntry struct {
	id    string
	state State
}

// The session cache is bounded: session cookies are client-minted, so an
// unbounded map would let anyone grow process memory with forged ids.
// Empty closed carts are never cached, and beyond maxSessions the least
// recently touched entry is dropped; its lines live on in the slot and
// rehydrate on next contact.
type service struct {
	mu          sync.Mutex
	sessions    map[string]*list.Element
	recency     *list.List // front = most recently touched
	maxSessions int

	slots    slotStore
	products productResolver
	logg     *logger.Logger
}

// NewService constructs the cart service. maxSessions caps the in-memory
// session cache; zero or negative selects DefaultMaxSessions.
func NewService(slots slotStore, products productResolver, maxSessions int, logg *logger.Logger) (Service, error) {
	if slots == nil {
		return nil, fmt.Errorf("slot store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product resolver required")
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &service{
		sessions:    map[string]*list.Element{},
		recency:     list.New(),
		maxSessions: maxSessions,
		slots:       slots,
		products:    products,
		logg:        logg,
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (State, error) {
	if sessionID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, sessionID)
}

func (s *service) Add(ctx context.Context, sessionID, productID string) (State, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return State{}, err
	}
	return s.transition(ctx, sessionID, AddItem{Product: *product})
}

func (s *service) Remove(ctx context.Context, sessionID, productID string) (State, error) {
	if productID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.transition(ctx, sessionID, RemoveItem{ProductID: productID})
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (State, error) {
	if productID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.transition(ctx, sessionID, UpdateQuantity{ProductID: productID, Quantity: quantity})
}

func (s *service) Clear(ctx context.Context, sessionID string) (State, error) {
	return s.transition(ctx, sessionID, ClearCart{})
}

func (s *service) Toggle(ctx context.Context, sessionID string) (State, error) {
	return s.transition(ctx, sessionID, ToggleVisibility{})
}

func (s *service) transition(ctx context.Context, sessionID string, action Action) (State, error) {
	if sessionID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	next := Apply(state, action)
	s.storeLocked(sessionID, next)

	// Persistence is best-effort: the slot only feeds the next
	// rehydration, so a write failure must not fail the transition.
	if err := s.slots.Save(ctx, sessionID, next.Lines); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "cart slot write failed", err)
	}

	return next, nil
}

// loadLocked returns the session's state, rehydrating from the slot on
// first touch. Corrupt slot content is logged and discarded; a slot that
// cannot be reached at all surfaces a dependency error instead, so a
// transient outage never overwrites an intact slot with an empty cart.
func (s *service) loadLocked(ctx context.Context, sessionID string) (State, error) {
	if el, ok := s.sessions[sessionID]; ok {
		s.recency.MoveToFront(el)
		return el.Value.(*sessionEntry).state, nil
	}

	state := State{Lines: []Line{}}
	lines, err := s.slots.Load(ctx, sessionID)
	switch {
	case errors.Is(err, ErrCorruptSlot):
		if s.logg != nil {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable cart slot")
		}
	case err != nil:
		return State{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart slot unavailable")
	case len(lines) > 0:
		state = Apply(state, ReplaceLines{Lines: lines})
	}

	s.storeLocked(sessionID, state)
	return state, nil
}

// storeLocked caches the session's state, evicting rather than storing
// when the state carries nothing worth keeping.
func (s *service) storeLocked(sessionID string, state State) {
	if len(state.Lines) == 0 && !state.Open {
		s.evictLocked(sessionID)
		return
	}

	if el, ok := s.sessions[sessionID]; ok {
		el.Value.(*sessionEntry).state = state
		s.recency.MoveToFront(el)
		return
	}

	s.sessions[sessionID] = s.recency.PushFront(&sessionEntry{id: sessionID, state: state})
	for len(s.sessions) > s.maxSessions {
		oldest := s.recency.Back()
		if oldest == nil {
			break
		}
		s.evictLocked(oldest.Value.(*sessionEntry).id)
	}
}

func (s *service) evictLocked(sessionID string) {
	el, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	s.recency.Remove(el)
	delete(s.sessions, sessionID)
}
