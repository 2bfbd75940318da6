package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
)

// exhaustionRatio is the in-use share of MaxOpenConnections that triggers a warning
const exhaustionRatio = 0.8

// ConnectionPoolMonitor periodically pings the database and warns when the pool runs dry
type ConnectionPoolMonitor struct {
	db       *sql.DB
	logger   coreport.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mutex   sync.Mutex
	healthy bool
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *sql.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
		healthy:  true,
	}
}

// Start begins monitoring every interval until Stop is called
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.check()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.check()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring and waits for the loop to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
	m.wg.Wait()
}

func (m *ConnectionPoolMonitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.db.PingContext(ctx)
	m.mutex.Lock()
	wasHealthy := m.healthy
	m.healthy = err == nil
	m.mutex.Unlock()

	switch {
	case err != nil:
		m.logger.Error("Database ping failed", map[string]any{"error": err.Error()})
	case !wasHealthy:
		m.logger.Info("Database connection recovered", nil)
	}

	stats := m.db.Stats()
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*exhaustionRatio {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
