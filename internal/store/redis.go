package store

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

// RedisStore keeps the document under a single key. Updates use optimistic
// locking (WATCH/MULTI/EXEC); a concurrent write surfaces as ErrConflict.
type RedisStore struct {
	rdb   goredis.UniversalClient
	key   string
	codec codec
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore does not take ownership of rdb; Close is a no-op.
func NewRedisStore(rdb goredis.UniversalClient, key string, opts ...Option) *RedisStore {
	return &RedisStore{rdb: rdb, key: key, codec: newCodec(opts)}
}

func (s *RedisStore) Load(ctx context.Context) (doc *diary.Document, err error) {
	ctx, span := startSpan(ctx, "store.load", "redis")
	defer func() { endSpan(span, err) }()

	return s.get(ctx, s.rdb)
}

func (s *RedisStore) Update(ctx context.Context, fn func(doc *diary.Document) error) (err error) {
	ctx, span := startSpan(ctx, "store.update", "redis")
	defer func() { endSpan(span, err) }()

	err = s.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		doc, err := s.get(ctx, tx)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}

		data, err := s.codec.encode(doc)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		return err
	}, s.key)

	if errors.Is(err, goredis.TxFailedErr) {
		return ErrConflict
	}
	return err
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Close() error { return nil }

func (s *RedisStore) get(ctx context.Context, c goredis.Cmdable) (*diary.Document, error) {
	data, err := c.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return s.codec.decode(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return s.codec.decode(data)
}
