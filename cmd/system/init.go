package system

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/sorriso_backend/config"
	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
	redispkg "github.com/Alijeyrad/sorriso_backend/pkg/redis"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the document store if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			st, cleanup, err := openStore(ctx, cfg, cfg.Storage.Driver)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Printf("Initializing %s store...\n", cfg.Storage.Driver)
			// A no-op update persists an empty document when none exists yet.
			if err := st.Update(ctx, func(*diary.Document) error { return nil }); err != nil {
				return fmt.Errorf("failed to initialize store: %w", err)
			}

			doc, err := st.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to read store: %w", err)
			}
			fmt.Printf("Store ready: %d patients, %d records.\n", len(doc.Patients), len(doc.Records))
			return nil
		},
	}

	return cmd
}

// openStore opens the store for driver, dialing redis when the driver
// needs it. cleanup closes everything that was opened.
func openStore(ctx context.Context, cfg *config.Config, driver string) (store.Store, func(), error) {
	var rdb *redis.Client
	if driver == config.StorageDriverRedis {
		var err error
		rdb, err = redispkg.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	var client redis.UniversalClient
	if rdb != nil {
		client = rdb
	}
	st, err := store.Open(cfg.Storage, driver, client)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}

	return st, func() {
		_ = st.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
	}, nil
}
