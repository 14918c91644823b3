package service

import (
	"encoding/json"
	"fmt"
	"math"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/entity"
)

// Score weights and normalization caps for the composite wallet score.
const (
	roiScoreWeight         = 0.3
	consistencyScoreWeight = 0.3
	volumeScoreWeight      = 0.2
	tradeScoreWeight       = 0.2

	volumeScoreCap     = 100000
	tradeScoreCap      = 200
	defaultConsistency = 50.0
)

// ComputeWalletScores maps a wallet's stored aggregates and JSON sub-metrics
// to a composite score record. It never fails the caller: on a malformed JSON
// column it returns a zeroed record together with the parse error so the
// caller can log the cause and keep going.
func ComputeWalletScores(wallet *entity.WalletAnalysis) (dto.WalletScores, error) {
	zeroed := dto.WalletScores{
		RiskMetrics: map[string]interface{}{},
		TokenStats:  []map[string]interface{}{},
	}

	riskMetrics := map[string]interface{}{}
	if len(wallet.RiskMetrics) > 0 {
		if err := json.Unmarshal(wallet.RiskMetrics, &riskMetrics); err != nil {
			return zeroed, fmt.Errorf("parse risk_metrics for wallet %s: %w", wallet.WalletAddress, err)
		}
	}

	tokenStats := []map[string]interface{}{}
	if len(wallet.TokenMetrics) > 0 {
		if err := json.Unmarshal(wallet.TokenMetrics, &tokenStats); err != nil {
			return zeroed, fmt.Errorf("parse token_metrics for wallet %s: %w", wallet.WalletAddress, err)
		}
	}
	if tokenStats == nil {
		tokenStats = []map[string]interface{}{}
	}
	if riskMetrics == nil {
		riskMetrics = map[string]interface{}{}
	}

	var roiScore float64
	if wallet.RoiPercentage != nil {
		roiScore = clamp01(*wallet.RoiPercentage/100) * 100
	}

	consistency := defaultConsistency
	if wallet.ConsistencyScore != nil {
		consistency = *wallet.ConsistencyScore
	}

	var volumeScore float64
	if wallet.TotalVolume != nil {
		volumeScore = clamp01(*wallet.TotalVolume/volumeScoreCap) * 100
	}

	var tradeScore float64
	if wallet.TotalTrades != nil {
		tradeScore = clamp01(float64(*wallet.TotalTrades)/tradeScoreCap) * 100
	}

	totalScore := roiScore*roiScoreWeight +
		consistency*consistencyScoreWeight +
		volumeScore*volumeScoreWeight +
		tradeScore*tradeScoreWeight

	var maxDrawdown float64
	if v, ok := riskMetrics["max_drawdown"].(float64); ok {
		maxDrawdown = v
	}

	return dto.WalletScores{
		TotalScore:       round2(totalScore),
		RoiScore:         round2(roiScore),
		ConsistencyScore: round2(consistency),
		VolumeScore:      round2(volumeScore),
		RiskScore:        round2(100 - maxDrawdown),
		RiskMetrics:      riskMetrics,
		TokenStats:       tokenStats,
	}, nil
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
