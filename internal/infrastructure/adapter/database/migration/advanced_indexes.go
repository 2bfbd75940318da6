package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"gorm.io/gorm"
)

// indexStatement is one CREATE INDEX statement and the name it is logged under
type indexStatement struct {
	name string
	sql  string
}

// cardIndexes back the listing filters and the expiry sweep
var cardIndexes = []indexStatement{
	{
		name: "idx_cards_owner_status",
		sql:  `CREATE INDEX IF NOT EXISTS idx_cards_owner_status ON cards (owner_id, status, id)`,
	},
	{
		name: "idx_cards_lapse_candidates",
		sql: `CREATE INDEX IF NOT EXISTS idx_cards_lapse_candidates
			ON cards (expiration_date)
			WHERE status <> 'EXPIRED' AND expiration_date IS NOT NULL`,
	},
}

// transferIndexes back the per-card history query, which reads both directions newest first
var transferIndexes = []indexStatement{
	{
		name: "idx_transfers_from_card_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transfers_from_card_created ON transfers (from_card_id, created_at DESC)`,
	},
	{
		name: "idx_transfers_to_card_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transfers_to_card_created ON transfers (to_card_id, created_at DESC)`,
	},
	{
		name: "idx_transfers_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transfers_created_at_brin
			ON transfers USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
}

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateCardIndexes creates the card listing and sweep indexes
func (m *AdvancedIndexManager) CreateCardIndexes(ctx context.Context) error {
	return m.create(ctx, cardIndexes)
}

// CreateTransferIndexes creates the transfer history indexes
func (m *AdvancedIndexManager) CreateTransferIndexes(ctx context.Context) error {
	return m.create(ctx, transferIndexes)
}

func (m *AdvancedIndexManager) create(ctx context.Context, statements []indexStatement) error {
	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// CreatePerformanceTweaks applies non-critical table settings; failures are logged only
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	// cards rows are rewritten on every transfer
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE cards SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for cards table", map[string]any{
			"error": err.Error(),
		})
	}
}
