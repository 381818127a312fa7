package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/bostel-e/christshop/internal/config"
)

const (
	loginLimitKeyPrefix = "loginlimit:"
	loginLimitWindow    = 60 * time.Second
)

// Sliding window over a sorted set. Returns {allowed, remaining}.
var loginLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)
if count >= limit then
    return {0, 0}
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('EXPIRE', key, window + 10)

return {1, limit - count - 1}
`)

// LoginRateLimiter throttles credential attempts per client IP so a stolen
// password list cannot be replayed quickly. Redis keeps the counters shared
// across instances; on Redis failure it lets the request through.
type LoginRateLimiter struct {
	client *redis.Client
	limit  int
}

func NewLoginRateLimiter(client *redis.Client) *LoginRateLimiter {
	return &LoginRateLimiter{
		client: client,
		limit:  config.LoginRateLimitPerMin,
	}
}

func (l *LoginRateLimiter) isAllowed(ctx context.Context, ip string) bool {
	now := time.Now().Unix()
	key := loginLimitKeyPrefix + ip

	result, err := loginLimitScript.Run(
		ctx, l.client, []string{key},
		now, int64(loginLimitWindow.Seconds()), l.limit,
	).Int64Slice()
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("login rate limit check failed, allowing request")
		return true
	}
	if len(result) != 2 {
		log.Warn().Str("ip", ip).Msg("unexpected login rate limit result")
		return true
	}

	return result[0] == 1
}

func (l *LoginRateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// chi's RealIP middleware has already resolved forwarded headers.
		ip := r.RemoteAddr

		if !l.isAllowed(r.Context(), ip) {
			log.Warn().Str("ip", ip).Msg("login rate limit exceeded")
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "Too many login attempts. Please try again later.",
				"code":  "RATE_LIMIT_EXCEEDED",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
