// Package cache keeps recently read records in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dipadubank/internal/models"
	"dipadubank/internal/query"
	"dipadubank/internal/repositories"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "dipadubank"
	defaultTTL = 30 * time.Second
)

// Client is the part of *redis.Client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// setIfGeneration stores ARGV[2] under KEYS[1] for ARGV[3] ms only while the generation
// at KEYS[2] still equals ARGV[1]. A missing generation reads as "".
const setIfGeneration = `
local current = redis.call('GET', KEYS[2]) or ''
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Key returns the cache key of one record.
func Key(entity string, id uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, entity, id)
}

// GenerationKey holds a token that changes on every write to the record at key.
func GenerationKey(key string) string {
	return key + ":gen"
}

// CachedRepository serves by-id lookups from Redis and falls through to the
// wrapped repository for everything else. Cache errors never fail a request.
//
// A read fills the cache only if no update or delete finished between the moment
// it looked at the record's generation and the moment it writes, so a read that
// raced a write cannot bring the old row back.
type CachedRepository struct {
	repositories.ResourceRepositoryInterface
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

// Wrap decorates repo with a read cache.
func Wrap(repo repositories.ResourceRepositoryInterface, client Client, ttl time.Duration, logger *slog.Logger) repositories.ResourceRepositoryInterface {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &CachedRepository{
		ResourceRepositoryInterface: repo,
		client:                      client,
		ttl:                         ttl,
		logger:                      logger,
	}
}

func (r *CachedRepository) FindFirst(ctx context.Context, q query.Query) (models.Entity, error) {
	if !q.IsByIDOnly() {
		return r.ResourceRepositoryInterface.FindFirst(ctx, q)
	}

	key := Key(r.Entity(), *q.ID)
	if entity, ok := r.get(ctx, key); ok {
		return entity, nil
	}

	generation, cacheable := r.generation(ctx, key)
	entity, err := r.ResourceRepositoryInterface.FindFirst(ctx, q)
	if err != nil {
		return nil, err
	}
	if cacheable {
		r.set(ctx, key, generation, entity)
	}
	return entity, nil
}

func (r *CachedRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Entity, error) {
	entity, err := r.ResourceRepositoryInterface.Update(ctx, id, fields)
	r.invalidate(ctx, id)
	return entity, err
}

func (r *CachedRepository) Delete(ctx context.Context, id uuid.UUID) (models.Entity, error) {
	entity, err := r.ResourceRepositoryInterface.Delete(ctx, id)
	r.invalidate(ctx, id)
	return entity, err
}

func (r *CachedRepository) get(ctx context.Context, key string) (models.Entity, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		r.logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}

	entity := r.NewEntity()
	if err := json.Unmarshal([]byte(val), entity); err != nil {
		r.logger.WarnContext(ctx, "cache entry is corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return entity, true
}

func (r *CachedRepository) generation(ctx context.Context, key string) (string, bool) {
	gen, err := r.client.Get(ctx, GenerationKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", true
	}
	if err != nil {
		return "", false
	}
	return gen, true
}

func (r *CachedRepository) set(ctx context.Context, key, generation string, entity models.Entity) {
	b, err := json.Marshal(entity)
	if err != nil {
		return
	}
	err = r.client.Eval(ctx, setIfGeneration, []string{key, GenerationKey(key)}, generation, b, r.ttl.Milliseconds()).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// invalidate bumps the generation first so in-flight reads skip their write, then drops the entry
func (r *CachedRepository) invalidate(ctx context.Context, id uuid.UUID) {
	key := Key(r.Entity(), id)
	if err := r.client.Set(ctx, GenerationKey(key), uuid.NewString(), r.generationTTL()).Err(); err != nil {
		r.logger.WarnContext(ctx, "cache generation bump failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.WarnContext(ctx, "cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// generationTTL outlives any read that started before the bump
func (r *CachedRepository) generationTTL() time.Duration {
	return r.ttl + time.Minute
}
