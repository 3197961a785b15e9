package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultConfirmationTTL bounds how long a delete request waits for an answer.
const DefaultConfirmationTTL = 5 * time.Minute

// Ticket is a pending delete waiting for the user's yes/no.
type Ticket struct {
	ID         string    `json:"ticket"`
	Collection string    `json:"collection"`
	EntityID   string    `json:"entity_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Confirmations implements two-step deletes: RequestDelete issues a ticket,
// Confirm performs the delete and Cancel drops it. Nothing is removed
// until Confirm is called.
type Confirmations struct {
	pending  map[string]Ticket
	deleters map[string]func(id string)
	ttl      time.Duration
	now      func() time.Time
	mu       sync.Mutex
}

// NewConfirmations creates an empty ticket registry. ttl <= 0 uses DefaultConfirmationTTL.
func NewConfirmations(ttl time.Duration) *Confirmations {
	if ttl <= 0 {
		ttl = DefaultConfirmationTTL
	}
	return &Confirmations{
		pending:  make(map[string]Ticket),
		deleters: make(map[string]func(id string)),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Register binds the delete action run when a ticket for collection is confirmed.
func (c *Confirmations) Register(collection string, del func(id string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleters[collection] = del
}

// RequestDelete records a pending delete and returns its ticket.
func (c *Confirmations) RequestDelete(collection, id string) (Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.deleters[collection]; !ok {
		return Ticket{}, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	c.sweepLocked()

	t := Ticket{
		ID:         uuid.New().String(),
		Collection: collection,
		EntityID:   id,
		ExpiresAt:  c.now().Add(c.ttl),
	}
	c.pending[t.ID] = t
	return t, nil
}

// Confirm runs the delete for ticketID. It reports false for unknown or
// expired tickets, which are no-ops.
func (c *Confirmations) Confirm(ticketID string) bool {
	c.mu.Lock()
	t, ok := c.pending[ticketID]
	if ok {
		delete(c.pending, ticketID)
	}
	del := c.deleters[t.Collection]
	expired := ok && c.now().After(t.ExpiresAt)
	c.mu.Unlock()

	if !ok || expired || del == nil {
		return false
	}
	del(t.EntityID)
	log.Printf("Confirmed delete of %s/%s", t.Collection, t.EntityID)
	return true
}

// Cancel drops ticketID without deleting anything.
func (c *Confirmations) Cancel(ticketID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[ticketID]
	delete(c.pending, ticketID)
	return ok
}

// Pending returns the number of outstanding tickets.
func (c *Confirmations) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Confirmations) sweepLocked() {
	now := c.now()
	for id, t := range c.pending {
		if now.After(t.ExpiresAt) {
			delete(c.pending, id)
		}
	}
}
