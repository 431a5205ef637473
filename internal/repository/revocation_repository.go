package repository

import (
	redisapp "tirage/internal/storage/redis"

	"github.com/redis/go-redis/v9"

	"context"
	"time"
)

// RedisRevocationRepo keeps revoked token ids in redis. Entries carry the
// remaining lifetime of the token, so the set never outgrows the tokens
// still in circulation.
type RedisRevocationRepo struct {
	Client *redisapp.Client
}

func NewRedisRevocationRepo(client *redisapp.Client) *RedisRevocationRepo {
	return &RedisRevocationRepo{Client: client}
}

func (r *RedisRevocationRepo) Insert(ctx context.Context, tokenID, kind, subjectID string, ttl time.Duration) error {
	return r.Client.Set(ctx, revokedKey(tokenID), kind+":"+subjectID, ttl).Err()
}

func (r *RedisRevocationRepo) Contains(ctx context.Context, tokenID string) (bool, error) {
	_, err := r.Client.Get(ctx, revokedKey(tokenID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func revokedKey(tokenID string) string {
	return "revoked:" + tokenID
}
