package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lablink/models"
	"lablink/utils"

	"github.com/go-redis/redis/v8"
)

// Carts survive page reloads but not indefinite abandonment.
const cartTTL = 7 * 24 * time.Hour

func cartKey(sessionID string) string {
	return utils.CartKeyPrefix + sessionID
}

func (s *DefaultCartService) load(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.Cache.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}
	return &c, nil
}

func (s *DefaultCartService) save(ctx context.Context, sessionID string, c *models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Cache.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func (s *DefaultCartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.load(ctx, sessionID)
}

func (s *DefaultCartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	addItem(c, item)
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCartService) RemoveItem(ctx context.Context, sessionID, id, centreID string) (*models.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	removeItem(c, id, centreID)
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCartService) UpdateQuantity(ctx context.Context, sessionID, id, centreID string, quantity int) (*models.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	updateQuantity(c, id, centreID, quantity)
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// The mutations below are total functions over the in-memory state; all I/O stays in
// the load/save wrappers above.

func addItem(c *models.Cart, item models.CartItem) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID && c.Items[i].CentreID == item.CentreID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

func removeItem(c *models.Cart, id, centreID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if !(it.ID == id && it.CentreID == centreID) {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

func updateQuantity(c *models.Cart, id, centreID string, quantity int) {
	if quantity <= 0 {
		removeItem(c, id, centreID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id && c.Items[i].CentreID == centreID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}
