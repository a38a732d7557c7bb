package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLiteCache is a SQLite implementation of the NarrativeCache interface
type SQLiteCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewSQLiteCache creates a new SQLite cache
func NewSQLiteCache(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS narrative_cache (
			stored_name TEXT PRIMARY KEY,
			narrative TEXT,
			created_at TIMESTAMP,
			expires_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	// Create index on expires_at for faster cleanup
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_expires_at ON narrative_cache(expires_at)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	cache := &SQLiteCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	// Start background cleanup
	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached narrative for a stored attachment name
func (c *SQLiteCache) Get(ctx context.Context, storedName string) (string, bool) {
	var narrative string

	err := c.db.QueryRowContext(ctx, `
		SELECT narrative
		FROM narrative_cache
		WHERE stored_name = ? AND expires_at > datetime('now')
	`, storedName).Scan(&narrative)

	if err != nil {
		if err == sql.ErrNoRows {
			return "", false
		}
		c.logger.Error("Failed to query cache", zap.Error(err), zap.String("stored_name", storedName))
		return "", false
	}

	return narrative, true
}

// Set stores a narrative under a stored attachment name
func (c *SQLiteCache) Set(ctx context.Context, storedName string, narrative string, ttl time.Duration) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	_, err := c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO narrative_cache (stored_name, narrative, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, storedName, narrative, now.Format(time.RFC3339), expiresAt.Format(time.RFC3339))

	if err != nil {
		c.logger.Error("Failed to insert cache entry", zap.Error(err), zap.String("stored_name", storedName))
	}
}

// Delete removes a cache entry
func (c *SQLiteCache) Delete(ctx context.Context, storedName string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM narrative_cache
		WHERE stored_name = ?
	`, storedName)

	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}

	return nil
}

// Cleanup removes expired entries
func (c *SQLiteCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM narrative_cache
		WHERE expires_at <= datetime('now')
	`)

	if err != nil {
		return fmt.Errorf("failed to clean up expired entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		c.logger.Debug("Cleaned up expired cache entries", zap.Int64("expired_count", rowsAffected))
	}

	return nil
}

// startCleanupTask starts a background task to clean up expired entries
func (c *SQLiteCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database connection
func (c *SQLiteCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
