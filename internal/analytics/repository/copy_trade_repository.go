package repository

import (
	"context"

	"copytrade-analytics/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CopyTradeRepository defines the interface for copy trade setup data operations.
type CopyTradeRepository interface {
	FindByAddress(ctx context.Context, address string) (*entity.CopyTradeSetup, error)
	Upsert(ctx context.Context, setup *entity.CopyTradeSetup) error
}

// NewCopyTradeRepository creates a new GORM-based copy trade setup repository.
func NewCopyTradeRepository(db *gorm.DB) CopyTradeRepository {
	return &copyTradeRepository{db: db}
}

type copyTradeRepository struct {
	db *gorm.DB
}

// FindByAddress retrieves the copy trade setup for a wallet. Returns
// gorm.ErrRecordNotFound when no setup exists.
func (r *copyTradeRepository) FindByAddress(ctx context.Context, address string) (*entity.CopyTradeSetup, error) {
	var setup entity.CopyTradeSetup
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", address).First(&setup).Error; err != nil {
		return nil, err
	}
	return &setup, nil
}

// Upsert inserts the setup or, on conflict with an existing wallet address,
// replaces all configured values. Last write wins.
func (r *copyTradeRepository) Upsert(ctx context.Context, setup *entity.CopyTradeSetup) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"active", "max_trade_size", "stop_loss", "take_profit", "notes", "updated_at"}),
	}).Create(setup).Error
}
