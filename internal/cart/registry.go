package cart

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
)

var ErrSessionNotFound = errors.New("cart session not found")

// Session is one open cart at a register. Mutations go through Do so that
// two requests for the same cart never interleave.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.Mutex
	cart *Cart
}

// Do runs fn with exclusive access to the session's cart.
func (s *Session) Do(fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.cart)
}

// Registry tracks the open carts of a process.
type Registry struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(clk clock.Clock) *Registry {
	return &Registry{
		clock:    clk,
		sessions: make(map[string]*Session),
	}
}

// Create opens an empty cart for cust.
func (r *Registry) Create(cust *customer.Customer) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: r.clock.Now(),
		cart:      New(cust),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return s, nil
}

func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	delete(r.sessions, id)

	return nil
}

// ByCustomer returns the sessions whose customer has the given name, oldest first.
func (r *Registry) ByCustomer(name string) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Session

	for _, s := range r.sessions {
		if cust := s.cart.Customer(); cust != nil && cust.Name == name {
			out = append(out, s)
		}
	}

	slices.SortFunc(out, func(a, b *Session) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
