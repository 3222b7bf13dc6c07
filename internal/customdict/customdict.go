// Package customdict persists user-supplied dictionary words in a Redis
// set so they survive restarts and are shared between instances.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store backed by the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: "spellcheck:custom_words"}
}

// Add inserts a word into the custom dictionary.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns every stored custom word.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}
