package store

import (
	"database/sql"

	"geonotes/internal/logger"
	"geonotes/migrations"
)

// DB wraps the standard library connection pool with the application logger.
// Repositories embed *DB and use the promoted query methods directly.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
