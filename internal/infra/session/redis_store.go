package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix        = "shoploc:session:"
	maxOptimisticAttempts = 5
)

// redisCommands is the subset shared by *redis.Client, *redis.Tx and redis.Pipeliner.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps sessions in Redis as JSON records with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

var _ repository.SessionStore = (*RedisStore)(nil)

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (entity.AuthState, error) {
	return s.load(ctx, s.client, sessionID)
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state entity.AuthState) error {
	return s.write(ctx, s.client, sessionID, state)
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKey(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "delete session")
	}

	return nil
}

// Update runs fn under WATCH so a concurrent write to the same session
// restarts the read-modify-write instead of being overwritten.
func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(entity.AuthState) (entity.AuthState, error)) error {
	key := redisKey(sessionID)

	for attempt := 0; attempt < maxOptimisticAttempts; attempt++ {
		var fnErr error

		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := s.load(ctx, tx, sessionID)
			if err != nil {
				return err
			}

			var next entity.AuthState
			next, fnErr = fn(current)
			if next == nil {
				return nil
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				return s.write(ctx, pipe, sessionID, next)
			})

			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			s.logger.Debug("Session update conflict, retrying",
				slog.Int("attempt", attempt+1),
			)

			continue
		}
		if err != nil {
			return errors.Wrap(err, "update session")
		}

		return fnErr
	}

	return repository.ErrSessionConflict
}

func (s *RedisStore) load(ctx context.Context, cmd redisCommands, sessionID string) (entity.AuthState, error) {
	data, err := cmd.Get(ctx, redisKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Anonymous{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}

	return decodeState(data)
}

func (s *RedisStore) write(ctx context.Context, cmd redisCommands, sessionID string, state entity.AuthState) error {
	if _, anonymous := state.(entity.Anonymous); anonymous {
		if err := cmd.Del(ctx, redisKey(sessionID)).Err(); err != nil {
			return errors.Wrap(err, "clear session")
		}

		return nil
	}

	data, err := encodeState(state)
	if err != nil {
		return err
	}

	if err := cmd.Set(ctx, redisKey(sessionID), data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "save session")
	}

	return nil
}
