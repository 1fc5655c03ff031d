package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by an embedded miniredis instance. The
// login rate limiter keeps its counters here during the suite.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		mini, err := miniredis.Run()
		if err != nil {
			panic("failed to start miniredis: " + err.Error())
		}
		redisConn = redis.NewClient(&redis.Options{Addr: mini.Addr()})
	})
	return redisConn
}

// ClearRedis flushes all rate limit counters.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
