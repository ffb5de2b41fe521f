package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript checks every window before incrementing any of them so a
// rejected request leaves the counters untouched.
// KEYS: one counter key per window. ARGV: limits, then expirations in ms.
var takeScript = redis.NewScript(`
local n = #KEYS
for i = 1, n do
	local count = tonumber(redis.call('GET', KEYS[i]) or '0')
	if count >= tonumber(ARGV[i]) then
		return i
	end
end
for i = 1, n do
	redis.call('INCR', KEYS[i])
	redis.call('PEXPIRE', KEYS[i], ARGV[n + i])
end
return 0
`)

// RedisStore keeps counters in Redis so limits survive restarts and are
// shared between instances.
type RedisStore struct {
	client    redis.Scripter
	prefix    string
	retention time.Duration
}

// NewRedisStore creates a store on an existing client.
func NewRedisStore(client redis.Scripter, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisStore{
		client:    client,
		prefix:    prefix,
		retention: Retention,
	}
}

// Take implements Store.
func (s *RedisStore) Take(ctx context.Context, clientID string, now time.Time, windows []Window) (int, error) {
	keys := make([]string, len(windows))
	args := make([]interface{}, 0, len(windows)*2)
	for i, w := range windows {
		keys[i] = s.key(clientID, w, now)
		args = append(args, w.Limit)
	}
	for _, w := range windows {
		args = append(args, s.ttl(w, now).Milliseconds())
	}

	res, err := takeScript.Run(ctx, s.client, keys, args...).Int()
	if err != nil {
		return 0, fmt.Errorf("run rate limit script: %w", err)
	}
	return res - 1, nil
}

func (s *RedisStore) key(clientID string, w Window, now time.Time) string {
	return s.prefix + ":" + clientID + ":" + w.Name + ":" + strconv.FormatInt(w.Index(now), 10)
}

// ttl keeps a counter until its window has ended and it is older than the
// retention horizon.
func (s *RedisStore) ttl(w Window, now time.Time) time.Duration {
	start := w.Start(w.Index(now))
	until := start.Add(s.retention)
	if end := start.Add(w.Size); end.After(until) {
		until = end
	}
	ttl := until.Sub(now)
	if ttl < time.Millisecond {
		ttl = time.Millisecond
	}
	return ttl
}
