// Package store executes the parameterized queries behind every API
// endpoint against the MySQL schema (Utente, Ordine, Prodotto, Contiene,
// Missione, Drone, Pilota, Traccia). The schema itself is owned by the
// external store; no migrations run here.
package store

import (
	"errors"
	"fmt"
	"time"

	"drone-delivery-api/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Pool sizing mirrors the original deployment's fixed pool of 5.
const (
	maxOpenConns    = 5
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

type Store struct {
	db *sqlx.DB
}

// New opens a pooled connection to the configured MySQL store and
// verifies it with a ping.
func New(cfg config.DB) (*Store, error) {
	if cfg.Host == "" {
		return nil, errors.New("database host not configured: set DB_HOST or MYSQL_HOST")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing handle. Used by tests.
func NewWithDB(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}
