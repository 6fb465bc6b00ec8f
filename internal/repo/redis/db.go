package redis

import (
	"context"

	"github.com/lueurxax/singlell/internal/log"
	"github.com/lueurxax/singlell/internal/repo/keys"
)

// schemaVersion is the layout version of stored lists.
const schemaVersion uint32 = 1

type DB interface {
	Migrate(ctx context.Context) error
	version
	listsRepo
}

type db struct {
	keyBuilder keys.Builder
	db         client

	log log.Logger
}

func (d *db) Migrate(ctx context.Context) error {
	v, err := d.GetVersion(ctx)
	if err != nil {
		return err
	}

	d.log.WithField("version", v).Info("current version")

	if v >= schemaVersion {
		return nil
	}

	if err = d.WriteVersion(ctx, schemaVersion); err != nil {
		return err
	}

	d.log.WithField("version", schemaVersion).Info("migrated to version")

	return nil
}

func NewDB(client client, log log.Logger) DB {
	return &db{
		keyBuilder: keys.NewBuilder(),
		db:         client,
		log:        log,
	}
}
