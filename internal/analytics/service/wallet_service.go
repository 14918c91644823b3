package service

import (
	"context"
	"errors"
	"sort"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/repository"
	"copytrade-analytics/internal/entity"
	"copytrade-analytics/pkg/logger"

	"gorm.io/gorm"
)

// ErrWalletNotFound is returned when no wallet analysis row matches an address.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrInvalidSortColumn is returned when a requested sort column is not allowed.
var ErrInvalidSortColumn = repository.ErrInvalidSortColumn

// WalletService defines the interface for wallet scoring and query operations.
type WalletService interface {
	GetTopWallets(ctx context.Context, req *dto.TopWalletsRequest) ([]dto.WalletScoreResponse, error)
	GetWalletDetail(ctx context.Context, address string) (*dto.WalletDetailResponse, error)
	GetWalletsPage(ctx context.Context, req *dto.WalletPageRequest) (*dto.WalletPageResponse, error)
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo repository.WalletRepository, logger *logger.Logger) WalletService {
	return &walletService{
		walletRepo: walletRepo,
		logger:     logger,
	}
}

type walletService struct {
	walletRepo repository.WalletRepository
	logger     *logger.Logger
}

// GetTopWallets retrieves wallets matching the filter criteria and returns
// them ordered by computed total score descending.
func (s *walletService) GetTopWallets(ctx context.Context, req *dto.TopWalletsRequest) ([]dto.WalletScoreResponse, error) {
	rows, err := s.walletRepo.FindTop(ctx, repository.TopWalletsFilter{
		MinROI:     req.MinROI,
		MinWinRate: req.MinWinRate,
		MinTrades:  req.MinTrades,
		MinVolume:  req.MinVolume,
		MinProfit:  req.MinProfit,
		RiskLevel:  req.RiskLevel,
		Limit:      req.Limit,
	})
	if err != nil {
		s.logger.Error("Failed to query top wallets", logger.ErrorField(err))
		return nil, err
	}

	s.logger.Info("Found wallets matching criteria", logger.Field("count", len(rows)))

	wallets := make([]dto.WalletScoreResponse, 0, len(rows))
	for i := range rows {
		wallets = append(wallets, s.mapToWalletScoreResponse(&rows[i]))
	}

	sort.SliceStable(wallets, func(i, j int) bool {
		return wallets[i].TotalScore > wallets[j].TotalScore
	})

	return wallets, nil
}

// GetWalletDetail retrieves a single wallet with raw fields and computed scores.
func (s *walletService) GetWalletDetail(ctx context.Context, address string) (*dto.WalletDetailResponse, error) {
	wallet, err := s.walletRepo.FindByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		s.logger.Error("Failed to fetch wallet details", logger.ErrorField(err), logger.Field("address", address))
		return nil, err
	}

	scores := s.computeScores(wallet)

	return &dto.WalletDetailResponse{
		Address:          wallet.WalletAddress,
		TotalPnl:         derefFloat(wallet.TotalPnlUSD),
		WinRate:          derefFloat(wallet.Winrate),
		TradeCount:       derefInt(wallet.TotalTrades),
		AvgTradeSize:     derefFloat(wallet.AvgTradeSize),
		Roi:              derefFloat(wallet.RoiPercentage),
		Volume:           derefFloat(wallet.TotalVolume),
		ConsistencyScore: derefFloat(wallet.ConsistencyScore),
		Tokens:           scores.TokenStats,
		RiskMetrics:      scores.RiskMetrics,
		Scores:           scores,
		LastUpdated:      wallet.LastUpdated,
	}, nil
}

// GetWalletsPage retrieves one page of wallets with inline computed scores.
func (s *walletService) GetWalletsPage(ctx context.Context, req *dto.WalletPageRequest) (*dto.WalletPageResponse, error) {
	if !repository.IsSortableColumn(req.SortBy) {
		return nil, ErrInvalidSortColumn
	}

	total, err := s.walletRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count wallets", logger.ErrorField(err))
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	rows, err := s.walletRepo.FindPage(ctx, offset, req.PageSize, req.SortBy, req.SortDesc)
	if err != nil {
		s.logger.Error("Failed to query wallets page", logger.ErrorField(err))
		return nil, err
	}

	wallets := make([]dto.WalletPageItem, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		wallets = append(wallets, dto.WalletPageItem{
			Address:      row.WalletAddress,
			TotalPnl:     derefFloat(row.TotalPnlUSD),
			WinRate:      derefFloat(row.Winrate),
			TradeCount:   derefInt(row.TotalTrades),
			Roi:          derefFloat(row.RoiPercentage),
			Volume:       derefFloat(row.TotalVolume),
			WalletScores: s.computeScores(row),
		})
	}

	pageSize := int64(req.PageSize)
	return &dto.WalletPageResponse{
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
		Wallets:    wallets,
	}, nil
}

// computeScores runs the score calculator, substituting zeroed defaults and
// logging the cause when a JSON column fails to parse.
func (s *walletService) computeScores(wallet *entity.WalletAnalysis) dto.WalletScores {
	scores, err := ComputeWalletScores(wallet)
	if err != nil {
		s.logger.Error("Error calculating wallet scores", logger.ErrorField(err), logger.Field("address", wallet.WalletAddress))
	}
	return scores
}

func (s *walletService) mapToWalletScoreResponse(wallet *entity.WalletAnalysis) dto.WalletScoreResponse {
	scores := s.computeScores(wallet)

	var avgProfit float64
	if wallet.TotalTrades != nil && *wallet.TotalTrades > 0 {
		avgProfit = derefFloat(wallet.TotalPnlUSD) / float64(*wallet.TotalTrades)
	}

	var maxDrawdown, sharpeRatio float64
	if v, ok := scores.RiskMetrics["max_drawdown"].(float64); ok {
		maxDrawdown = v
	}
	if v, ok := scores.RiskMetrics["sharpe_ratio"].(float64); ok {
		sharpeRatio = v
	}

	return dto.WalletScoreResponse{
		Address:          wallet.WalletAddress,
		TotalScore:       scores.TotalScore,
		RoiScore:         scores.RoiScore,
		ConsistencyScore: scores.ConsistencyScore,
		VolumeScore:      scores.VolumeScore,
		RiskScore:        scores.RiskScore,
		TradeCount:       derefInt(wallet.TotalTrades),
		WinRate:          derefFloat(wallet.Winrate),
		AvgProfit:        avgProfit,
		MaxDrawdown:      maxDrawdown,
		SharpeRatio:      sharpeRatio,
		TokenStats:       scores.TokenStats,
		RiskMetrics:      scores.RiskMetrics,
	}
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
