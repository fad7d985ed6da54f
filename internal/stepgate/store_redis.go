package stepgate

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

const keyPrefix = "stepgate:"

// advanceScript stores max(current, ARGV[1]) and refreshes the TTL (ARGV[2] ms, 0 = none)
var advanceScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
local step = tonumber(ARGV[1])
local ttl = tonumber(ARGV[2])
if current and tonumber(current) >= step then
	if ttl > 0 then
		redis.call('PEXPIRE', KEYS[1], ttl)
	end
	return tonumber(current)
end
if ttl > 0 then
	redis.call('SET', KEYS[1], step, 'PX', ttl)
else
	redis.call('SET', KEYS[1], step)
end
return step
`)

// RedisStore Store backed by Redis, one key per donor session
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище; ttl ограничивает жизнь ключа сессии (0 = без ограничения)
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (domain.Step, bool, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return domain.StepNone, false, nil
	}
	if err != nil {
		return domain.StepNone, false, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return domain.StepNone, false, err
	}
	return domain.Step(value), true, nil
}

func (s *RedisStore) AdvanceTo(ctx context.Context, sessionID string, step domain.Step) (domain.Step, error) {
	stored, err := advanceScript.Run(ctx, s.client, []string{keyPrefix + sessionID}, int(step), s.ttl.Milliseconds()).Int()
	if err != nil {
		return domain.StepNone, err
	}
	return domain.Step(stored), nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
