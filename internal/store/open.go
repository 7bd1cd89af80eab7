package store

import (
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/sorriso_backend/config"
	"github.com/Alijeyrad/sorriso_backend/pkg/crypto"
)

// Open builds the store for driver using the storage section of cfg. The
// redis driver requires rdb.
func Open(cfg config.StorageConfig, driver string, rdb goredis.UniversalClient) (Store, error) {
	var opts []Option
	if cfg.EncryptionKey != "" {
		sealer, err := crypto.NewSealer(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("storage encryption key: %w", err)
		}
		opts = append(opts, WithSealer(sealer))
	}

	switch driver {
	case config.StorageDriverFile:
		return NewFileStore(cfg.File.Path, opts...)
	case config.StorageDriverRedis:
		if rdb == nil {
			return nil, errors.New("redis storage driver needs a redis connection")
		}
		return NewRedisStore(rdb, cfg.Redis.Key, opts...), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
