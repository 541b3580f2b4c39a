package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"urjaportal/backend/libs/calc"
)

// Store keeps each consumer's appliance list in a hash keyed by appliance id.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewStore returns redis-backed store. A zero ttl keeps lists forever.
func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) key(userID int64) string {
	return fmt.Sprintf("appliances:user:%d", userID)
}

// List returns the user's appliances in the order they were added.
func (s *Store) List(ctx context.Context, userID int64) ([]calc.Appliance, error) {
	fields, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, err
	}

	appliances := make([]calc.Appliance, 0, len(fields))
	for id, raw := range fields {
		var a calc.Appliance
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return nil, fmt.Errorf("redis: decode appliance %s: %w", id, err)
		}
		appliances = append(appliances, a)
	}
	calc.SortByID(appliances)
	return appliances, nil
}

// Add stores a validated appliance and refreshes the list ttl.
func (s *Store) Add(ctx context.Context, userID int64, a calc.Appliance) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	key := s.key(userID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, a.ID, data)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	return err
}

// Remove deletes an appliance; removing an unknown id is not an error.
func (s *Store) Remove(ctx context.Context, userID int64, id string) error {
	return s.client.HDel(ctx, s.key(userID), id).Err()
}

// Clear drops the whole list.
func (s *Store) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, s.key(userID)).Err()
}
