package app

import (
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
	"github.com/offermart/marketplace-backend/internal/utils"
)

type Config struct {
	Port      string
	ScanHour  int
	RedisAddr string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:      utils.GetEnv("PORT", "8080", log),
		ScanHour:  utils.GetEnvAsInt("EXPIRY_SCAN_HOUR", 9, log),
		RedisAddr: utils.GetEnv("REDIS_ADDR", "", log),
	}
}
