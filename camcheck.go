// Package camcheck decides whether a fleet of camera operating
// envelopes fully covers a target surveillance envelope in
// distance x light-level space, and keeps a history of those checks.
//
// Basic usage:
//
//	client, err := camcheck.New(
//	    camcheck.WithSQLite(".camcheck/camcheck.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	record, err := client.Checks.Run(ctx, target, cameras)
//	fmt.Println(record.Result.Message)
//
// The coverage core itself is a pure function and can be used without
// a client: see the domain/coverage package.
package camcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/sitewise/camcheck/application/service"
	"github.com/sitewise/camcheck/infrastructure/persistence"
	"github.com/sitewise/camcheck/internal/database"
)

// ErrClientClosed indicates the client has been closed.
var ErrClientClosed = errors.New("camcheck: client is closed")

// Client is the main entry point for the camcheck library.
type Client struct {
	// Checks runs coverage checks and serves their history.
	Checks *service.Check

	db     database.Database
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.dbURL == "" {
		cfg.dbURL = "sqlite:///" + filepath.Join(cfg.dataDir, "camcheck.db")
	}

	db, err := database.NewDatabase(context.Background(), cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Client{
		Checks: service.NewCheck(persistence.NewCheckStore(db), cfg.logger),
		db:     db,
		logger: cfg.logger,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Close releases the database. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.db.Close()
}
