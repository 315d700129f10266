package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore holds one-time login codes keyed by phone number.
type OTPStore interface {
	SaveCode(ctx context.Context, phone, code string) error
	GetCode(ctx context.Context, phone string) (string, error)
	DeleteCode(ctx context.Context, phone string) error
}

type OTPRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOTPRepository(client *redis.Client, ttl time.Duration) *OTPRepository {
	return &OTPRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *OTPRepository) getKey(phone string) string {
	return fmt.Sprintf("otp:phone:%s", phone)
}

func (r *OTPRepository) SaveCode(ctx context.Context, phone, code string) error {
	return r.client.Set(ctx, r.getKey(phone), code, r.ttl).Err()
}

// GetCode returns "" when no code is pending for the phone number.
func (r *OTPRepository) GetCode(ctx context.Context, phone string) (string, error) {
	val, err := r.client.Get(ctx, r.getKey(phone)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *OTPRepository) DeleteCode(ctx context.Context, phone string) error {
	return r.client.Del(ctx, r.getKey(phone)).Err()
}
