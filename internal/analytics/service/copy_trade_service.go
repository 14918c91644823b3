package service

import (
	"context"
	"encoding/json"
	"errors"

	"copytrade-analytics/internal/analytics/config"
	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/repository"
	"copytrade-analytics/internal/entity"
	"copytrade-analytics/pkg/common"
	"copytrade-analytics/pkg/logger"
	"copytrade-analytics/pkg/telegram"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Default settings returned when a wallet has no copy trade setup yet.
const (
	defaultMaxTradeSize = 500
	defaultStopLoss     = 10
	defaultTakeProfit   = 20
)

// CopyTradeService defines the interface for copy trade setup operations.
type CopyTradeService interface {
	GetSettings(ctx context.Context, address string) (*dto.CopyTradeSettingsResponse, error)
	SaveSetup(ctx context.Context, req *dto.CopyTradeSetupRequest) error
}

// NewCopyTradeService creates a new copy trade service. The notifier may be
// nil when Telegram notifications are not configured.
func NewCopyTradeService(copyTradeRepo repository.CopyTradeRepository, redisClient *redis.Client, notifier telegram.Notifier, logger *logger.Logger, cfg *config.Config) CopyTradeService {
	return &copyTradeService{
		copyTradeRepo: copyTradeRepo,
		redisClient:   redisClient,
		notifier:      notifier,
		logger:        logger,
		cfg:           cfg,
	}
}

type copyTradeService struct {
	copyTradeRepo repository.CopyTradeRepository
	redisClient   *redis.Client
	notifier      telegram.Notifier
	logger        *logger.Logger
	cfg           *config.Config
}

// GetSettings retrieves the copy trade settings for a wallet, falling back to
// the defined defaults when no setup exists.
func (s *copyTradeService) GetSettings(ctx context.Context, address string) (*dto.CopyTradeSettingsResponse, error) {
	setup, err := s.copyTradeRepo.FindByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.CopyTradeSettingsResponse{
				Active:       false,
				MaxTradeSize: defaultMaxTradeSize,
				StopLoss:     defaultStopLoss,
				TakeProfit:   defaultTakeProfit,
				Notes:        "",
			}, nil
		}
		s.logger.Error("Failed to fetch copy trade settings", logger.ErrorField(err), logger.Field("address", address))
		return nil, err
	}

	return &dto.CopyTradeSettingsResponse{
		Active:       setup.Active,
		MaxTradeSize: setup.MaxTradeSize,
		StopLoss:     setup.StopLoss,
		TakeProfit:   setup.TakeProfit,
		Notes:        setup.Notes,
	}, nil
}

// SaveSetup inserts or replaces the copy trade setup for a wallet and
// publishes the change for downstream consumers. Publishing and notifying are
// best effort and never fail the request.
func (s *copyTradeService) SaveSetup(ctx context.Context, req *dto.CopyTradeSetupRequest) error {
	setup := &entity.CopyTradeSetup{
		WalletAddress: req.WalletAddress,
		Active:        req.Active,
		MaxTradeSize:  req.MaxTradeSize,
		StopLoss:      req.StopLoss,
		TakeProfit:    req.TakeProfit,
		Notes:         req.Notes,
	}

	if err := s.copyTradeRepo.Upsert(ctx, setup); err != nil {
		s.logger.Error("Failed to upsert copy trade setup", logger.ErrorField(err), logger.Field("address", req.WalletAddress))
		return err
	}

	s.publishSetupUpdated(ctx, setup)
	s.notifySetupUpdated(setup)

	s.logger.Info("Copy trade setup updated", logger.Field("address", setup.WalletAddress), logger.Field("active", setup.Active))
	return nil
}

func (s *copyTradeService) publishSetupUpdated(ctx context.Context, setup *entity.CopyTradeSetup) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(setup)
	if err != nil {
		s.logger.Error("Failed to marshal setup event", logger.ErrorField(err), logger.Field("address", setup.WalletAddress))
		return
	}

	if err := s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamCopyTradeSetupUpdated,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: s.cfg.Redis.StreamMaxLen,
	}).Err(); err != nil {
		s.logger.Error("Failed to publish setup event", logger.ErrorField(err), logger.Field("address", setup.WalletAddress))
	}
}

func (s *copyTradeService) notifySetupUpdated(setup *entity.CopyTradeSetup) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendMessage(telegram.FormatCopyTradeSetup(setup)); err != nil {
		s.logger.Error("Failed to send setup notification", logger.ErrorField(err), logger.Field("address", setup.WalletAddress))
	}
}
