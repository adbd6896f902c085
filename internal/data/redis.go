package data

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/charak7/Heart-care/internal/errdefs"
	"github.com/charak7/Heart-care/internal/model"
)

// RedisRepository is the local development driver. Insert-if-absent maps
// to SETNX on <table>:<userId>.
type RedisRepository struct {
	rdb   *redis.Client
	table string
}

func NewRedisRepository(rdb *redis.Client, table string) *RedisRepository {
	return &RedisRepository{rdb: rdb, table: table}
}

func (r *RedisRepository) Insert(ctx context.Context, sub *model.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	ok, err := r.rdb.SetNX(ctx, r.table+":"+sub.UserID, data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return errdefs.ErrAlreadyExists
	}
	return nil
}
