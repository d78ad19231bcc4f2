package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Content is a thin JSON cache over redis for the public content reads.
// With no address configured every Get is a miss and every Set a no-op,
// so the handlers never need to care whether redis is deployed.
type Content struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string, ttl time.Duration) *Content {
	c := &Content{ttl: ttl}
	if addr != "" {
		c.rdb = redis.NewClient(&redis.Options{Addr: addr})
	}
	return c
}

func (c *Content) Get(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("cache get error:", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *Content) Set(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

// Invalidate drops keys after an admin edit so the public site picks the
// change up on the next read.
func (c *Content) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache invalidate error:", err)
	}
}
