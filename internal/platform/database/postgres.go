package database

import (
	"database/sql"
	"fmt"
	"time"

	"codejam_core/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// Connect opens a pooled connection to PostgreSQL using the loaded
// configuration and verifies it with a ping.
func Connect() (*sql.DB, error) {
	if config.AppConfig == nil {
		return nil, fmt.Errorf("database.Connect: configuration not loaded, call config.Load first")
	}

	db, err := sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		return nil, fmt.Errorf("database.Connect: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.Connect ping: %w", err)
	}

	return db, nil
}

func Close(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}
