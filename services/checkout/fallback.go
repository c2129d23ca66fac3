package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lablink/models"
	"lablink/utils"

	"github.com/go-redis/redis/v8"
)

// RedisFallbackStore keeps per-partner fallback booking lists. Entries have no TTL:
// they represent bookings the backend of record has not seen yet and must survive
// until reconciliation removes them.
type RedisFallbackStore struct {
	Cache *redis.Client
}

// NewRedisFallbackStore creates a FallbackStore using the given Redis client.
func NewRedisFallbackStore(cache *redis.Client) *RedisFallbackStore {
	return &RedisFallbackStore{Cache: cache}
}

func fallbackKey(partnerID string) string {
	return utils.FallbackKeyPrefix + partnerID
}

func (s *RedisFallbackStore) Append(ctx context.Context, partnerID string, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal fallback booking: %w", err)
	}
	if err := s.Cache.RPush(ctx, fallbackKey(partnerID), data).Err(); err != nil {
		return fmt.Errorf("failed to append fallback booking: %w", err)
	}
	return nil
}

func (s *RedisFallbackStore) List(ctx context.Context, partnerID string) ([]models.Booking, error) {
	rows, err := s.Cache.LRange(ctx, fallbackKey(partnerID), 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list fallback bookings: %w", err)
	}
	bookings := make([]models.Booking, 0, len(rows))
	for _, row := range rows {
		var b models.Booking
		if err := json.Unmarshal([]byte(row), &b); err != nil {
			return nil, fmt.Errorf("failed to parse fallback booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (s *RedisFallbackStore) Remove(ctx context.Context, partnerID, bookingID string) error {
	rows, err := s.Cache.LRange(ctx, fallbackKey(partnerID), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read fallback bookings: %w", err)
	}
	for _, row := range rows {
		var b models.Booking
		if err := json.Unmarshal([]byte(row), &b); err != nil {
			continue
		}
		if b.ID == bookingID {
			if err := s.Cache.LRem(ctx, fallbackKey(partnerID), 1, row).Err(); err != nil {
				return fmt.Errorf("failed to remove fallback booking: %w", err)
			}
			return nil
		}
	}
	return nil
}
