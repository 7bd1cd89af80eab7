package system

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/sorriso_backend/config"
	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func NewMigrateCommand() *cobra.Command {
	var from, to string
	var force bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the diary document between storage drivers",
		Long: `Copy the whole diary document from one storage driver to another, e.g.
from the JSON file used in development to redis:

  sorriso system migrate --from file --to redis

The target must be empty unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == to {
				return fmt.Errorf("--from and --to must differ (both %q)", from)
			}
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			src, closeSrc, err := openStore(ctx, cfg, from)
			if err != nil {
				return err
			}
			defer closeSrc()

			dst, closeDst, err := openStore(ctx, cfg, to)
			if err != nil {
				return err
			}
			defer closeDst()

			n, err := migrate(ctx, src, dst, force)
			if err != nil {
				return err
			}

			slog.Info("document migrated", "from", from, "to", to, "patients", n.Patients, "records", n.Records)
			fmt.Printf("Migrated %d patients and %d records from %s to %s.\n", n.Patients, n.Records, from, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", config.StorageDriverFile, "source storage driver (file, redis)")
	cmd.Flags().StringVar(&to, "to", config.StorageDriverRedis, "target storage driver (file, redis)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite a non-empty target")

	return cmd
}

var errTargetNotEmpty = errors.New("target store is not empty, use --force to overwrite")

type migrated struct {
	Patients int
	Records  int
}

func migrate(ctx context.Context, src, dst store.Store, force bool) (migrated, error) {
	doc, err := src.Load(ctx)
	if err != nil {
		return migrated{}, fmt.Errorf("failed to read source: %w", err)
	}

	err = dst.Update(ctx, func(target *diary.Document) error {
		if !force && (len(target.Patients) > 0 || len(target.Records) > 0) {
			return errTargetNotEmpty
		}
		*target = *doc
		return nil
	})
	if err != nil {
		return migrated{}, fmt.Errorf("failed to write target: %w", err)
	}

	return migrated{Patients: len(doc.Patients), Records: len(doc.Records)}, nil
}
