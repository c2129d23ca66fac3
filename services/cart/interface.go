package cart

import (
	"context"

	"lablink/models"

	"github.com/go-redis/redis/v8"
)

// Service manages the per-session cart. Entries are keyed by (service id, centre id):
// the same service at two different centres is a distinct line.
type Service interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	// AddItem merges by identity: an existing (id, centreId) line has its quantity
	// incremented by one; otherwise the item is appended with quantity 1.
	AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error)
	// RemoveItem deletes the matching line; removing an absent line is a no-op.
	RemoveItem(ctx context.Context, sessionID, id, centreID string) (*models.Cart, error)
	// UpdateQuantity sets the line quantity; a quantity of zero or less removes the
	// line instead of persisting a non-positive value.
	UpdateQuantity(ctx context.Context, sessionID, id, centreID string, quantity int) (*models.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// DefaultCartService implements Service over a Redis-persisted JSON blob.
type DefaultCartService struct {
	Cache *redis.Client
}

// NewDefaultCartService creates a cart service using the given Redis client.
func NewDefaultCartService(cache *redis.Client) *DefaultCartService {
	return &DefaultCartService{Cache: cache}
}
