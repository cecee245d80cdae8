package middleware

import (
	"wardrobe-assistant/config"
	pkgLog "wardrobe-assistant/pkg/log"
)

type Middleware struct {
	l           pkgLog.Logger
	authConfig  config.AuthConfig
	aiRateLimit *rateLimiter
}

func New(l pkgLog.Logger, authCfg config.AuthConfig, rlCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		authConfig:  authCfg,
		aiRateLimit: newRateLimiter(rlCfg.AIRequestsPerMin),
	}
}
