package store

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
)

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// UserReader looks a user up by id.
type UserReader interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// UserCache is a read-through user cache in front of a UserReader. Each
// entry is a hash holding the id and username the store returned, so a hit
// yields the same canonical id as a miss. Users are never modified, so
// entries only leave the cache by TTL.
type UserCache struct {
	next UserReader
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewUserCache(next UserReader, rdb redis.Cmdable, ttl time.Duration) *UserCache {
	return &UserCache{next: next, rdb: rdb, ttl: ttl}
}

func userKey(id string) string { return "user:" + id }

// GetUserByID serves from Redis when possible. Redis failures are logged and
// the lookup falls through to the backing store.
func (c *UserCache) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	fields, err := c.rdb.HGetAll(ctx, userKey(id)).Result()
	switch {
	case err != nil:
		log.Printf("user cache get %s: %v", id, err)
	case fields["id"] != "":
		return &models.User{ID: fields["id"], Username: fields["username"]}, nil
	}

	u, err := c.next.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	key := userKey(id)
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, "id", u.ID, "username", u.Username)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		log.Printf("user cache set %s: %v", id, err)
	}
	return u, nil
}
