package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront-service/models"
)

// CheckoutStore persists the delivery address captured at checkout.
type CheckoutStore interface {
	GetAddress(ctx context.Context, sessionID string) (*models.DeliveryAddress, error)
	SaveAddress(ctx context.Context, sessionID string, addr models.DeliveryAddress) error
	DeleteAddress(ctx context.Context, sessionID string) error
}

type CheckoutRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCheckoutRepository(client *redis.Client, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *CheckoutRepository) getKey(sessionID string) string {
	return fmt.Sprintf("checkout:session:%s", sessionID)
}

// GetAddress returns nil, nil when no address is stored or the stored
// record fails the schema check. Malformed data is never surfaced as
// an error to callers.
func (r *CheckoutRepository) GetAddress(ctx context.Context, sessionID string) (*models.DeliveryAddress, error) {
	key := r.getKey(sessionID)
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	addr, ok := models.ParseStoredAddress([]byte(data))
	if !ok {
		return nil, nil
	}
	return addr, nil
}

func (r *CheckoutRepository) SaveAddress(ctx context.Context, sessionID string, addr models.DeliveryAddress) error {
	key := r.getKey(sessionID)

	data, err := json.Marshal(addr)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

func (r *CheckoutRepository) DeleteAddress(ctx context.Context, sessionID string) error {
	key := r.getKey(sessionID)
	return r.client.Del(ctx, key).Err()
}
