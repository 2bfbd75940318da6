package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// step is one versioned schema change
type step struct {
	version string
	details string
	run     func(ctx context.Context, m *MigrationManager) error
}

// steps are applied in order; a database records the last one it received
var steps = []step{
	{
		version: "1.0.0",
		details: "users, cards and transfers tables",
		run: func(ctx context.Context, m *MigrationManager) error {
			return m.db.WithContext(ctx).AutoMigrate(&model.User{}, &model.Card{}, &model.Transfer{})
		},
	},
	{
		version: "1.1.0",
		details: "card listing and expiry sweep indexes",
		run: func(ctx context.Context, m *MigrationManager) error {
			return m.indexes.CreateCardIndexes(ctx)
		},
	},
	{
		version: "1.2.0",
		details: "transfer history indexes",
		run: func(ctx context.Context, m *MigrationManager) error {
			if err := m.indexes.CreateTransferIndexes(ctx); err != nil {
				return err
			}
			m.indexes.CreatePerformanceTweaks(ctx)
			return nil
		},
	},
}

// CurrentSchemaVersion represents the current database schema version
var CurrentSchemaVersion = steps[len(steps)-1].version

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexes      *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexes:      NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("failed to create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to check current schema version: %w", err)
	}

	todo, err := pending(currentVersion)
	if err != nil {
		return err
	}
	if len(todo) == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Starting database migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	for _, s := range todo {
		if err := s.run(ctx, m); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
		if err := m.setVersion(ctx, s.version, s.details); err != nil {
			return fmt.Errorf("record migration %s: %w", s.version, err)
		}
		m.logger.Info("Applied migration", map[string]any{
			"version": s.version,
			"details": s.details,
		})
	}
	return nil
}

// GetCurrentVersion gets the most recently applied version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at DESC, id DESC").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// pending returns the steps after current
func pending(current string) ([]step, error) {
	if current == "" {
		return steps, nil
	}
	for i, s := range steps {
		if s.version == current {
			return steps[i+1:], nil
		}
	}
	return nil, fmt.Errorf("database schema version %q is unknown to this build", current)
}
