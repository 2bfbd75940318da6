package main

import (
	"context"
	"database/sql"
	"fmt"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/config"
)

// storeHandle is the persistence backend selected by database.driver
type storeHandle struct {
	uow   persistence.UnitOfWork
	ping  func(ctx context.Context) error
	close func() error
	// sqlDB is set only for the postgres driver
	sqlDB *sql.DB
}

func (s *storeHandle) Close() {
	if s.close != nil {
		_ = s.close()
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider) (*storeHandle, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on restart", nil)
		store := memory.NewStore(cfg.Transaction.LockTimeout)
		return &storeHandle{
			uow:  memory.NewUnitOfWork(store),
			ping: store.Ping,
		}, nil

	case config.DriverPostgres, "":
		manager := database.NewManager(database.FromAppConfig(cfg), logger, tp)
		if _, err := manager.Connect(ctx); err != nil {
			return nil, err
		}
		if err := manager.Migrate(ctx); err != nil {
			_ = manager.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return &storeHandle{
			uow:   manager.CreateUnitOfWork(),
			ping:  manager.Ping,
			close: manager.Close,
			sqlDB: manager.SQLDB(),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
