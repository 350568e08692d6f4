package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"go-gin-event-room/config"
	"go-gin-event-room/pkg/logger"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate 使用 tern 套用內嵌的 migrations，版本記錄在 schema_version
func Migrate(ctx context.Context, cfg *config.DatabaseConfig) error {
	log := logger.WithComponent("migrator")

	conn, err := pgx.Connect(ctx, DSN(cfg))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		log.Info("database schema up to date", zap.Int("version", len(m.Migrations)))
	} else {
		log.Info("migrated database schema", zap.Int32("from", from), zap.Int("to", len(m.Migrations)))
	}
	return nil
}
