// ================== internal/database/mongo.go ==================
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	apperrors "github.com/KKaanaakk/pet-reminder/pkg/errors"
)

// Config holds store connection settings injected from the environment.
type Config struct {
	URI            string
	DBName         string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
	MinPoolSize    uint64
	// IdleThreshold is how long a cached handle may sit unused before the
	// next Acquire re-verifies it with a ping.
	IdleThreshold time.Duration
}

// DefaultConfig returns conservative connection defaults.
func DefaultConfig() *Config {
	return &Config{
		ConnectTimeout: 10 * time.Second,
		MaxPoolSize:    10,
		MinPoolSize:    0,
		IdleThreshold:  4 * time.Minute,
	}
}

// Manager owns a cached MongoDB handle shared across requests. The handle is
// lazily (re)built: Acquire hands out the cached database after a liveness
// check, tearing down and reconnecting when the handle has gone stale.
// Safe for concurrent use; connection pooling itself is the driver's job.
type Manager struct {
	cfg *Config

	mu       sync.Mutex
	client   *mongo.Client
	db       *mongo.Database
	lastUsed time.Time
}

func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Manager{cfg: cfg}
}

// Acquire returns a usable database handle, connecting or reconnecting as
// needed. A handle idle past the threshold is pinged first; if the ping
// fails the connection is rebuilt. Failure to produce a live handle
// surfaces as ErrUnavailable.
func (m *Manager) Acquire(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	if m.client != nil {
		if now.Sub(m.lastUsed) < m.cfg.IdleThreshold {
			m.lastUsed = now
			return m.db, nil
		}
		// Idle too long: verify before handing it out.
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := m.client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			m.lastUsed = now
			return m.db, nil
		}
		// Stale connection, tear it down and rebuild below.
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = m.client.Disconnect(closeCtx)
		cancel()
		m.client = nil
		m.db = nil
	}

	if err := m.connectLocked(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	m.lastUsed = time.Now()
	return m.db, nil
}

func (m *Manager) connectLocked(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(m.cfg.URI)
	clientOptions.SetMaxPoolSize(m.cfg.MaxPoolSize)
	clientOptions.SetMinPoolSize(m.cfg.MinPoolSize)
	clientOptions.SetMaxConnIdleTime(m.cfg.IdleThreshold)
	clientOptions.SetServerSelectionTimeout(m.cfg.ConnectTimeout)
	clientOptions.SetSocketTimeout(45 * time.Second)
	clientOptions.SetRetryWrites(true)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = client.Disconnect(disconnectCtx)
		cancel()
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	m.client = client
	m.db = client.Database(m.cfg.DBName)
	return nil
}

// HealthCheck verifies both connectivity and database access.
func (m *Manager) HealthCheck(ctx context.Context) error {
	db, err := m.Acquire(ctx)
	if err != nil {
		return err
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.RunCommand(checkCtx, map[string]interface{}{"ping": 1}).Err(); err != nil {
		return fmt.Errorf("database access failed: %w", err)
	}
	return nil
}

// Close disconnects the cached client, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}
