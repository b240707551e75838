package redischat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"creditwise-backend/internal/usecase/chat"
)

// Store keeps chat conversations as Redis lists, one per session, expiring
// after ttl of inactivity.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Store { return &Store{rdb: rdb, ttl: ttl} }

func sessionKey(sessionID string) string { return "chat:session:" + sessionID }

func (s *Store) Append(ctx context.Context, sessionID string, m chat.Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	key := sessionKey(sessionID)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) List(ctx context.Context, sessionID string) ([]chat.Message, error) {
	vals, err := s.rdb.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]chat.Message, 0, len(vals))
	for _, v := range vals {
		var m chat.Message
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
