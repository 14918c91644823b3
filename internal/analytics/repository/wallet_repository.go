package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"copytrade-analytics/internal/entity"

	"gorm.io/gorm"
)

// ErrInvalidSortColumn is returned when a requested sort column is not in the
// allow-list of wallet_analysis columns.
var ErrInvalidSortColumn = errors.New("invalid sort column")

// sortableColumns is the allow-list of columns accepted for ORDER BY
// interpolation; anything else is rejected before it reaches the query text.
var sortableColumns = map[string]struct{}{
	"wallet_address":    {},
	"total_pnl_usd":     {},
	"winrate":           {},
	"total_trades":      {},
	"roi_percentage":    {},
	"avg_trade_size":    {},
	"total_volume":      {},
	"consistency_score": {},
	"last_updated":      {},
}

// IsSortableColumn reports whether the given column may be used for sorting
// the wallet list.
func IsSortableColumn(column string) bool {
	_, ok := sortableColumns[column]
	return ok
}

// TopWalletsFilter holds the store-side filter criteria for top wallets.
type TopWalletsFilter struct {
	MinROI     float64
	MinWinRate float64
	MinTrades  int
	MinVolume  float64
	MinProfit  float64
	RiskLevel  string
	Limit      int
}

// WalletRepository defines the interface for wallet analysis data operations.
type WalletRepository interface {
	FindTop(ctx context.Context, filter TopWalletsFilter) ([]entity.WalletAnalysis, error)
	FindByAddress(ctx context.Context, address string) (*entity.WalletAnalysis, error)
	FindPage(ctx context.Context, offset, limit int, sortBy string, sortDesc bool) ([]entity.WalletAnalysis, error)
	Count(ctx context.Context) (int64, error)
}

// NewWalletRepository creates a new GORM-based wallet analysis repository.
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

type walletRepository struct {
	db *gorm.DB
}

// FindTop retrieves wallets matching the filter, ordered by ROI descending at
// the store. The caller re-sorts by computed total score.
func (r *walletRepository) FindTop(ctx context.Context, filter TopWalletsFilter) ([]entity.WalletAnalysis, error) {
	var (
		qBuilder strings.Builder
		wallets  []entity.WalletAnalysis
		qParam   = []interface{}{}
	)

	qBuilder.WriteString(`
	SELECT
		wa.wallet_address,
		wa.total_pnl_usd,
		wa.winrate,
		wa.total_trades,
		wa.roi_percentage,
		wa.avg_trade_size,
		wa.total_volume,
		wa.consistency_score,
		COALESCE(wa.token_metrics, '[]'::jsonb) AS token_metrics,
		COALESCE(wa.risk_metrics, '{}'::jsonb) AS risk_metrics
	FROM wallet_analysis AS wa
	WHERE wa.roi_percentage >= ?
	AND wa.winrate >= ?
	AND wa.total_trades >= ?
	AND wa.total_volume >= ?
	AND wa.total_pnl_usd >= ?
`)
	qParam = append(qParam, filter.MinROI, filter.MinWinRate, filter.MinTrades, filter.MinVolume, filter.MinProfit)

	if filter.RiskLevel != "" {
		qBuilder.WriteString(" AND COALESCE(wa.risk_metrics->>'risk_rating', 'Medium') = ?")
		qParam = append(qParam, filter.RiskLevel)
	}

	qBuilder.WriteString(" ORDER BY wa.roi_percentage DESC LIMIT ?")
	qParam = append(qParam, filter.Limit)

	if err := r.db.WithContext(ctx).Raw(qBuilder.String(), qParam...).Scan(&wallets).Error; err != nil {
		return nil, err
	}

	return wallets, nil
}

// FindByAddress retrieves a single wallet row, with nullable numeric columns
// coalesced to 0 and JSON columns to empty array/object.
func (r *walletRepository) FindByAddress(ctx context.Context, address string) (*entity.WalletAnalysis, error) {
	query := `
	SELECT
		wa.wallet_address,
		COALESCE(wa.total_pnl_usd, 0) AS total_pnl_usd,
		COALESCE(wa.winrate, 0) AS winrate,
		COALESCE(wa.total_trades, 0) AS total_trades,
		COALESCE(wa.roi_percentage, 0) AS roi_percentage,
		COALESCE(wa.avg_trade_size, 0) AS avg_trade_size,
		COALESCE(wa.total_volume, 0) AS total_volume,
		COALESCE(wa.consistency_score, 0) AS consistency_score,
		COALESCE(wa.token_metrics, '[]'::jsonb) AS token_metrics,
		COALESCE(wa.risk_metrics, '{}'::jsonb) AS risk_metrics,
		wa.last_updated
	FROM wallet_analysis AS wa
	WHERE wa.wallet_address = ?
`

	var wallet entity.WalletAnalysis
	result := r.db.WithContext(ctx).Raw(query, address).Scan(&wallet)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &wallet, nil
}

// FindPage retrieves one page of wallet rows ordered by the given column.
// The column must pass the allow-list; the direction is fixed to ASC/DESC.
func (r *walletRepository) FindPage(ctx context.Context, offset, limit int, sortBy string, sortDesc bool) ([]entity.WalletAnalysis, error) {
	if !IsSortableColumn(sortBy) {
		return nil, ErrInvalidSortColumn
	}

	direction := "ASC"
	if sortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
	SELECT
		wa.wallet_address,
		wa.total_pnl_usd,
		wa.winrate,
		wa.total_trades,
		wa.roi_percentage,
		wa.avg_trade_size,
		wa.total_volume,
		wa.consistency_score,
		COALESCE(wa.token_metrics, '[]'::jsonb) AS token_metrics,
		COALESCE(wa.risk_metrics, '{}'::jsonb) AS risk_metrics,
		wa.last_updated
	FROM wallet_analysis AS wa
	ORDER BY %s %s
	LIMIT ? OFFSET ?
`, sortBy, direction)

	var wallets []entity.WalletAnalysis
	if err := r.db.WithContext(ctx).Raw(query, limit, offset).Scan(&wallets).Error; err != nil {
		return nil, err
	}

	return wallets, nil
}

// Count returns the total number of wallet analysis rows.
func (r *walletRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.WalletAnalysis{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
