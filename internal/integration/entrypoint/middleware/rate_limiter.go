// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	domainerror "github.com/phoenix-field/backend/internal/domain/error"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting for the login endpoint. When a
// Redis client is supplied the counters are shared across instances;
// otherwise they live in process memory.
type RateLimiter struct {
	limiter *limiter.Limiter
}

// NewRateLimiter creates an in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	rate := limiter.Rate{Period: defaultWindowDuration, Limit: defaultMaxAttempts}
	return &RateLimiter{limiter: limiter.New(memory.NewStore(), rate)}
}

// NewRedisRateLimiter creates a rate limiter backed by Redis. It falls back
// to the in-memory store if the Redis store cannot be initialized.
func NewRedisRateLimiter(client *redis.Client, maxAttempts int64, window time.Duration) *RateLimiter {
	rate := limiter.Rate{Period: window, Limit: maxAttempts}
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "login_rate_limit",
	})
	if err != nil {
		return &RateLimiter{limiter: limiter.New(memory.NewStore(), rate)}
	}
	return &RateLimiter{limiter: limiter.New(store, rate)}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		limiterCtx, err := rl.limiter.Get(c.Request.Context(), clientIP)
		if err != nil {
			// A broken counter store must not lock everyone out.
			c.Next()
			return
		}

		if limiterCtx.Reached {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
