package system

import (
	"fmt"
	"io/fs"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/migration"
	"github.com/duolog/duolog/internal/storage"
	"github.com/duolog/duolog/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite storage")
	}

	// Open without Load so an outdated schema doesn't block us.
	if err := sqliteStore.Open(); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqliteStore.Close()

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(db, subFS)
	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
