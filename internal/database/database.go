package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("database file not found")

type Database struct {
	DB   *sqlx.DB
	Path string
}

// OpenExisting opens dbPath only if the file already exists. It never creates
// a database.
func OpenExisting(dbPath string) (*Database, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dbPath, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", dbPath, ErrNotFound)
	}

	return connect(dbPath)
}

func connect(dbPath string) (*Database, error) {
	db, err := sqlx.Connect("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	return &Database{
		DB:   db,
		Path: dbPath,
	}, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}
