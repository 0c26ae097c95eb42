package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "hostel:session:"

// RedisRepo stores session records in redis. Used when the dashboard runs
// with more than one instance behind a load balancer; selected by config.
type RedisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepo(addr string, ttl time.Duration) *RedisRepo {
	return &RedisRepo{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *RedisRepo) Upsert(ctx context.Context, rec Record) error {
	if rec.SessionID == "" {
		return fmt.Errorf("sessionID is required")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", rec.SessionID, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+rec.SessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisRepo) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}
	if err := r.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisRepo) List(ctx context.Context) ([]Record, error) {
	var out []Record
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		sessionID := strings.TrimPrefix(key, redisKeyPrefix)
		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			out = append(out, Record{SessionID: sessionID})
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			out = append(out, Record{SessionID: sessionID})
			continue
		}
		rec.SessionID = sessionID
		out = append(out, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return out, nil
}

// Close releases the underlying redis connection.
func (r *RedisRepo) Close() error {
	return r.client.Close()
}
