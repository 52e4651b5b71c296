package catalog

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

type entry struct {
	ticket    models.Ticket
	expiresAt time.Time
}

// Cache is a TTL cache-aside wrapper around a catalog. Concurrent misses
// for the same ticket collapse into a single backend lookup. A short TTL
// keeps the "price refreshed on next add" behavior close to live prices
// without a database round trip per cart mutation.
type Cache struct {
	next cart.Catalog
	ttl  time.Duration

	mu      sync.RWMutex
	entries map[uint]entry
	group   singleflight.Group
}

func NewCache(next cart.Catalog, ttl time.Duration) *Cache {
	return &Cache{
		next:    next,
		ttl:     ttl,
		entries: make(map[uint]entry),
	}
}

func (c *Cache) FindTicket(ctx context.Context, id uint) (*models.Ticket, error) {
	c.mu.RLock()
	cached, ok := c.entries[id]
	c.mu.RUnlock()
	if ok && time.Now().Before(cached.expiresAt) {
		ticket := cached.ticket
		return &ticket, nil
	}

	value, err, _ := c.group.Do(strconv.FormatUint(uint64(id), 10), func() (interface{}, error) {
		ticket, err := c.next.FindTicket(ctx, id)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[id] = entry{ticket: *ticket, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return ticket, nil
	})
	if err != nil {
		return nil, err
	}

	ticket := *value.(*models.Ticket)
	return &ticket, nil
}

// Invalidate drops a ticket from the cache; called after admin price
// edits so the next add-to-cart sees the new price immediately.
func (c *Cache) Invalidate(id uint) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}
