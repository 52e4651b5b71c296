package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

// Sessions expire with the cookie.
const cartTTL = 24 * time.Hour

// RedisStore keeps carts in redis as JSON, one key per session.
type RedisStore struct {
	client   *redis.Client
	seedDemo bool
}

func NewRedisStore(client *redis.Client, seedDemo bool) *RedisStore {
	return &RedisStore{client: client, seedDemo: seedDemo}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	value, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		fresh := defaultCart(s.seedDemo)
		if err := s.Set(ctx, sessionID, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(value), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, cart *models.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), payload, cartTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
