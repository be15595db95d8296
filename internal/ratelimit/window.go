package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"campaign-server/internal/clients/redis"
	"campaign-server/internal/observability"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Reservation asks for one send slot in a company's window
type Reservation struct {
	Now   time.Time
	Limit int
	// Gap is the minimum time since the company's previous send
	Gap time.Duration
}

// Window stores send timestamps per key
type Window interface {
	// Reserve drops entries older than WindowSize and, when both the cap and
	// the gap allow it, records a send at r.Now and returns 0. Otherwise it
	// records nothing and returns how long to wait before asking again. The
	// check and the record are one atomic step for every caller sharing the
	// window.
	Reserve(ctx context.Context, key string, r Reservation) (time.Duration, error)
}

// MemoryWindow keeps send timestamps in process memory
type MemoryWindow struct {
	mu    sync.Mutex
	sends map[string][]time.Time
}

// NewMemoryWindow creates an empty in-process window
func NewMemoryWindow() *MemoryWindow {
	return &MemoryWindow{sends: make(map[string][]time.Time)}
}

func (w *MemoryWindow) Reserve(_ context.Context, key string, r Reservation) (time.Duration, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	times := w.trim(key, r.Now.Add(-WindowSize))
	if len(times) >= r.Limit {
		return max(times[0].Add(WindowSize).Sub(r.Now), time.Millisecond), nil
	}
	if len(times) > 0 {
		if wait := times[len(times)-1].Add(r.Gap).Sub(r.Now); wait > 0 {
			return wait, nil
		}
	}
	w.sends[key] = append(times, r.Now)
	return 0, nil
}

// Record adds a send without checking the window
func (w *MemoryWindow) Record(key string, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sends[key] = append(w.trim(key, at.Add(-WindowSize)), at)
}

// Count returns the sends left in the window ending at now
func (w *MemoryWindow) Count(key string, now time.Time) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.trim(key, now.Add(-WindowSize)))
}

// trim drops entries at or before since. Callers hold mu.
func (w *MemoryWindow) trim(key string, since time.Time) []time.Time {
	times := w.sends[key]
	i := 0
	for i < len(times) && !times[i].After(since) {
		i++
	}
	times = times[i:]
	if len(times) == 0 {
		delete(w.sends, key)
		return nil
	}
	w.sends[key] = times
	return times
}

// reserveScript is the Redis side of Reserve. Scores are unix milliseconds.
// KEYS[1] window key; ARGV now, window, limit, gap, member, ttl.
var reserveScript = goredis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local gap = tonumber(ARGV[4])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
  local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  local wait = tonumber(oldest[2]) + window - now
  if wait < 1 then wait = 1 end
  return wait
end
if count > 0 then
  local last = redis.call('ZREVRANGE', key, 0, 0, 'WITHSCORES')
  local wait = tonumber(last[2]) + gap - now
  if wait > 0 then return wait end
end
redis.call('ZADD', key, now, ARGV[5])
redis.call('PEXPIRE', key, ARGV[6])
return 0
`)

// RedisWindow keeps send timestamps in a Redis sorted set so every process
// sending for a company sees the same window
type RedisWindow struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

// NewRedisWindow creates a window backed by Redis
func NewRedisWindow(client *redis.Client, logger *observability.Logger) *RedisWindow {
	return &RedisWindow{
		redis:  client,
		ttl:    2 * WindowSize,
		logger: logger,
	}
}

func (w *RedisWindow) Reserve(ctx context.Context, key string, r Reservation) (time.Duration, error) {
	reply, err := w.redis.RunScript(ctx, reserveScript, []string{key},
		r.Now.UnixMilli(),
		WindowSize.Milliseconds(),
		r.Limit,
		r.Gap.Milliseconds(),
		fmt.Sprintf("%d:%s", r.Now.UnixNano(), uuid.NewString()),
		w.ttl.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve send: %w", err)
	}

	waitMs, ok := reply.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected reserve reply %T", reply)
	}
	return time.Duration(waitMs) * time.Millisecond, nil
}

// fallbackWindow uses the shared window and switches to the local one for a
// call when the shared one fails
type fallbackWindow struct {
	shared Window
	local  *MemoryWindow
	logger *observability.Logger
}

func (w *fallbackWindow) Reserve(ctx context.Context, key string, r Reservation) (time.Duration, error) {
	wait, err := w.shared.Reserve(ctx, key, r)
	if err != nil {
		w.logger.Error(ctx, "shared send window unavailable, falling back to memory", err)
		return w.local.Reserve(ctx, key, r)
	}
	// the local window mirrors admitted sends so a fallback has recent history
	if wait == 0 {
		w.local.Record(key, r.Now)
	}
	return wait, nil
}

// NewWindow returns a Redis-backed window with an in-memory fallback when
// Redis is enabled, and a memory window otherwise
func NewWindow(client *redis.Client, logger *observability.Logger) Window {
	if client == nil || !client.IsEnabled() {
		return NewMemoryWindow()
	}
	return &fallbackWindow{
		shared: NewRedisWindow(client, logger),
		local:  NewMemoryWindow(),
		logger: logger,
	}
}
