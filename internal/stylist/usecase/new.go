package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"wardrobe-assistant/config"
	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/stylist"
	"wardrobe-assistant/internal/wardrobe"
	"wardrobe-assistant/pkg/bgremoval"
	pkgLog "wardrobe-assistant/pkg/log"
	"wardrobe-assistant/pkg/renderprovider"
	"wardrobe-assistant/pkg/vision"
	"wardrobe-assistant/pkg/weather"
)

const (
	invocationCacheSize = 512
	invocationCacheTTL  = 30 * time.Minute
)

type implUseCase struct {
	l          pkgLog.Logger
	vision     vision.IVision
	bgRemoval  bgremoval.IBgRemoval // nil disables background removal
	weather    weather.IWeather     // nil disables weather context
	weatherCfg config.WeatherConfig
	renders    *renderprovider.Registry
	wardrobe   wardrobe.UseCase
	gate       entitlement.Gate

	invMu       sync.Mutex
	invocations *expirable.LRU[string, *invocation]
}

// New creates a new stylist use case.
func New(
	l pkgLog.Logger,
	visionClient vision.IVision,
	bgRemoval bgremoval.IBgRemoval,
	weatherClient weather.IWeather,
	weatherCfg config.WeatherConfig,
	renders *renderprovider.Registry,
	wardrobeUC wardrobe.UseCase,
	gate entitlement.Gate,
) stylist.UseCase {
	return &implUseCase{
		l:           l,
		vision:      visionClient,
		bgRemoval:   bgRemoval,
		weather:     weatherClient,
		weatherCfg:  weatherCfg,
		renders:     renders,
		wardrobe:    wardrobeUC,
		gate:        gate,
		invocations: expirable.NewLRU[string, *invocation](invocationCacheSize, nil, invocationCacheTTL),
	}
}
