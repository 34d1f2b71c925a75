package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arieltecnotron/tecnobot-v1/conversation"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const conversationKeyPrefix = "conversation:"

// Redis is the Redis-backed conversation store. State survives process
// restarts and expiry is delegated to key TTLs.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to Redis and fails fast when the server is unreachable.
// ttl of zero stores conversations without expiry.
func NewRedis(addr, password string, db int, ttl time.Duration) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connection failed")
	}

	log.Info().
		Str("addr", addr).
		Int("db", db).
		Msg("Redis connected successfully")

	return &Redis{rdb: rdb, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, senderID string) (conversation.State, bool, error) {
	payload, err := r.rdb.Get(ctx, conversationKey(senderID)).Result()
	if errors.Is(err, redis.Nil) {
		return conversation.State{}, false, nil
	}
	if err != nil {
		return conversation.State{}, false, fmt.Errorf("failed to get conversation: %w", err)
	}

	var state conversation.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return conversation.State{}, false, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return state, true, nil
}

func (r *Redis) Set(ctx context.Context, senderID string, state conversation.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	if err := r.rdb.Set(ctx, conversationKey(senderID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store conversation: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, senderID string) error {
	if err := r.rdb.Del(ctx, conversationKey(senderID)).Err(); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}

func (r *Redis) ActiveSenders(ctx context.Context) ([]string, error) {
	keys, err := r.rdb.Keys(ctx, conversationKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	senders := make([]string, 0, len(keys))
	for _, key := range keys {
		senders = append(senders, strings.TrimPrefix(key, conversationKeyPrefix))
	}
	return senders, nil
}

func (r *Redis) Backend() string {
	return "redis"
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

func conversationKey(senderID string) string {
	return conversationKeyPrefix + senderID
}
