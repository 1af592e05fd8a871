package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"club-ads/db/migrations"
)

// ErrDirty is returned when a previous migration failed half way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate applies the embedded migrations up to migrations.Version.
func Migrate(addr string) error {
	return migrateTo(addr, migrations.Version)
}

// Rollback reverts the schema by steps migrations.
func Rollback(addr string, steps int) error {
	mg, closeFn, err := open(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = mg.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback %d steps: %w", steps, err)
	}
	return nil
}

// SchemaVersion reports the applied migration version and whether it is dirty.
func SchemaVersion(addr string) (uint, bool, error) {
	mg, closeFn, err := open(addr)
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	v, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func migrateTo(addr string, version uint) error {
	mg, closeFn, err := open(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return ErrDirty
	}

	if err = mg.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func open(addr string) (*migrate.Migrate, func(), error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, nil, err
	}
	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		_ = driver.Close()
		return nil, nil, err
	}
	return mg, func() { _, _ = mg.Close() }, nil
}
