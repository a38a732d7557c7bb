package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQLCache is a MySQL implementation of the NarrativeCache interface
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache creates a new MySQL cache
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS narrative_cache (
			stored_name VARCHAR(255) PRIMARY KEY,
			narrative TEXT,
			created_at TIMESTAMP,
			expires_at TIMESTAMP,
			INDEX idx_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
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
func (c *MySQLCache) Get(ctx context.Context, storedName string) (string, bool) {
	var narrative string

	err := c.db.QueryRowContext(ctx, `
		SELECT narrative
		FROM narrative_cache
		WHERE stored_name = ? AND expires_at > NOW()
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
func (c *MySQLCache) Set(ctx context.Context, storedName string, narrative string, ttl time.Duration) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	_, err := c.db.ExecContext(ctx, `
		REPLACE INTO narrative_cache (stored_name, narrative, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, storedName, narrative, now, expiresAt)

	if err != nil {
		c.logger.Error("Failed to insert cache entry", zap.Error(err), zap.String("stored_name", storedName))
	}
}

// Delete removes a cache entry
func (c *MySQLCache) Delete(ctx context.Context, storedName string) error {
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
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM narrative_cache
		WHERE expires_at <= NOW()
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
func (c *MySQLCache) startCleanupTask() {
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
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
