package common

const (
	RedisStreamCopyTradeSetupUpdated = "copytrade.setup.updated"

	CacheKeySystemStatsOverview = "stats.overview"
)
