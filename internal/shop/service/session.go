package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"shopfront_backend/internal/shop/domain"
)

// submitState tracks where a session's submission sits in the
// Idle → Validating → Submitting cycle. Both resolved outcomes return the
// session to idle.
type submitState int

const (
	stateIdle submitState = iota
	stateValidating
	stateSubmitting
)

// session is one open popup. It owns the fetched product, its variant index
// and the shopper's selection; all of it is discarded on close. The mutex
// serializes selection changes and the submission state transitions.
type session struct {
	id     uuid.UUID
	cartID uuid.UUID

	mu        sync.Mutex
	product   domain.Product
	index     domain.VariantIndex
	selection domain.Selection
	state     submitState
	lastSeen  time.Time
}

func newSession(cartID uuid.UUID, product domain.Product) *session {
	return &session{
		id:       uuid.New(),
		cartID:   cartID,
		product:  product,
		index:    domain.BuildVariantIndex(product.Variants),
		lastSeen: time.Now(),
	}
}

func (s *session) touch() {
	s.lastSeen = time.Now()
}

func (s *session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Never evict a session mid-submission.
	if s.state != stateIdle {
		return false
	}
	return now.Sub(s.lastSeen) > ttl
}
