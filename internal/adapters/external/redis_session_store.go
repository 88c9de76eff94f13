package external

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

const (
	redisKeyPrefix   = "weatherdash:session:"
	maxWatchAttempts = 5
)

// RedisSessionStore implements the SessionStore port using Redis.
// Each session uses three keys: the JSON state, the generation counter and the
// theme toggle counter.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects to Redis and verifies the connection
func NewRedisSessionStore(cfg *config.RedisConfig) (*RedisSessionStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewSessionError("failed to connect to Redis", err)
	}

	return &RedisSessionStore{client: client}, nil
}

func stateKey(sessionID string) string {
	return redisKeyPrefix + sessionID + ":state"
}

func generationKey(sessionID string) string {
	return redisKeyPrefix + sessionID + ":gen"
}

func themeKey(sessionID string) string {
	return redisKeyPrefix + sessionID + ":theme"
}

func (r *RedisSessionStore) NextGeneration(ctx context.Context, sessionID string, ttl time.Duration) (uint64, error) {
	if err := validateSessionArgs(sessionID, ttl); err != nil {
		return 0, err
	}

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, generationKey(sessionID))
		pipe.Expire(ctx, generationKey(sessionID), ttl)
		return nil
	})
	if err != nil {
		return 0, errors.NewSessionError("redis generation increment failed", err)
	}
	return uint64(incr.Val()), nil
}

func (r *RedisSessionStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	if sessionID == "" {
		return nil, errors.NewValidationError("session id cannot be empty")
	}

	val, err := r.client.Get(ctx, stateKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, errors.NewSessionError("redis get operation failed", err)
	}
	return val, nil
}

// SaveIfCurrent watches the generation key so a concurrent NextGeneration aborts
// the write. An aborted transaction is retried, so the result is reported as
// stale only when the generation has really moved on.
func (r *RedisSessionStore) SaveIfCurrent(ctx context.Context, sessionID string, generation uint64, state []byte, ttl time.Duration) (bool, error) {
	if err := validateSessionArgs(sessionID, ttl); err != nil {
		return false, err
	}

	genKey := generationKey(sessionID)
	for attempt := 0; attempt < maxWatchAttempts; attempt++ {
		saved := false
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := tx.Get(ctx, genKey).Result()
			if err == redis.Nil {
				return nil
			}
			if err != nil {
				return err
			}
			if current != strconv.FormatUint(generation, 10) {
				return nil
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, stateKey(sessionID), state, ttl)
				pipe.Expire(ctx, themeKey(sessionID), ttl)
				return nil
			})
			if err != nil {
				return err
			}
			saved = true
			return nil
		}, genKey)

		if stderrors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, errors.NewSessionError("redis conditional save failed", err)
		}
		return saved, nil
	}

	return false, errors.NewSessionError("redis conditional save kept conflicting", redis.TxFailedErr)
}

// ToggleDarkMode counts toggles; an odd count means dark mode
func (r *RedisSessionStore) ToggleDarkMode(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	if err := validateSessionArgs(sessionID, ttl); err != nil {
		return false, err
	}

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, themeKey(sessionID))
		pipe.Expire(ctx, themeKey(sessionID), ttl)
		return nil
	})
	if err != nil {
		return false, errors.NewSessionError("redis theme toggle failed", err)
	}
	return incr.Val()%2 == 1, nil
}

func (r *RedisSessionStore) DarkMode(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, errors.NewValidationError("session id cannot be empty")
	}

	toggles, err := r.client.Get(ctx, themeKey(sessionID)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.NewSessionError("redis theme read failed", err)
	}
	return toggles%2 == 1, nil
}

// Ping checks if Redis connection is alive
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewSessionError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisSessionStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewSessionError("failed to close Redis connection", err)
	}
	return nil
}
