package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/logger"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file unless an in-memory or URI DSN is given
	if !strings.HasPrefix(cfg.DSN, "file:") && !strings.Contains(cfg.DSN, ":memory:") {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file")
		}
	}

	conn, err := sql.Open(config.DriverSQLite, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// sqlite serialises writers anyway
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		driver:             config.DriverSQLite,
		placeholder:        sq.Question,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
