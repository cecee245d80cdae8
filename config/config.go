package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Wardrobe assistant specifics
	Closet    ClosetConfig
	Vision    VisionConfig
	BgRemoval BgRemovalConfig
	Weather   WeatherConfig
	Stripe    StripeConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig

	// Render provider abstraction
	Render RenderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ClosetConfig points at the durable closet storage service.
type ClosetConfig struct {
	URL         string
	AccessToken string
}

type VisionConfig struct {
	APIKey string
	Model  string
	APIURL string
}

type BgRemovalConfig struct {
	APIKey string // empty disables stage B entirely
}

type WeatherConfig struct {
	Enabled   bool
	Latitude  float64
	Longitude float64
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type AuthConfig struct {
	// Disabled skips token introspection and trusts the X-User-ID header.
	// Intended for local development only.
	Disabled bool

	// Audience is the expected audience claim on bearer ID tokens.
	Audience string
}

type RateLimitConfig struct {
	AIRequestsPerMin int
}

// RenderConfig holds configuration for the render provider abstraction layer
type RenderConfig struct {
	Providers []RenderProviderConfig `yaml:"providers"`
}

// RenderProviderConfig holds configuration for a single render provider
type RenderProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Closet storage
	cfg.Closet.URL = viper.GetString("closet.url")
	cfg.Closet.AccessToken = viper.GetString("closet.access_token")
	if closetURL := viper.GetString("closet_url"); closetURL != "" {
		cfg.Closet.URL = closetURL
	}
	if closetToken := viper.GetString("closet_access_token"); closetToken != "" {
		cfg.Closet.AccessToken = closetToken
	}

	// Vision provider
	cfg.Vision.APIKey = viper.GetString("vision.api_key")
	cfg.Vision.Model = viper.GetString("vision.model")
	cfg.Vision.APIURL = viper.GetString("vision.api_url")
	if visionKey := viper.GetString("vision_api_key"); visionKey != "" {
		cfg.Vision.APIKey = visionKey
	}

	// Background removal (optional)
	cfg.BgRemoval.APIKey = viper.GetString("bgremoval.api_key")
	if bgKey := viper.GetString("bgremoval_api_key"); bgKey != "" {
		cfg.BgRemoval.APIKey = bgKey
	}

	// Weather context (optional)
	cfg.Weather.Enabled = viper.GetBool("weather.enabled")
	cfg.Weather.Latitude = viper.GetFloat64("weather.latitude")
	cfg.Weather.Longitude = viper.GetFloat64("weather.longitude")

	// Stripe
	cfg.Stripe.SecretKey = viper.GetString("stripe.secret_key")
	cfg.Stripe.PublishableKey = viper.GetString("stripe.publishable_key")
	if stripeKey := viper.GetString("stripe_secret_key"); stripeKey != "" {
		cfg.Stripe.SecretKey = stripeKey
	}

	// Auth
	cfg.Auth.Disabled = viper.GetBool("auth.disabled")
	cfg.Auth.Audience = viper.GetString("auth.audience")

	// Rate limiting
	cfg.RateLimit.AIRequestsPerMin = viper.GetInt("rate_limit.ai_requests_per_min")

	// Render providers
	if viper.IsSet("render.providers") {
		providersRaw := viper.Get("render.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := RenderProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
					}
					cfg.Render.Providers = append(cfg.Render.Providers, provider)
				}
			}
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.ai_requests_per_min", 10)
	viper.SetDefault("weather.enabled", false)
}

// expandEnvVar expands ${VAR} references in config values.
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}"))
	}
	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
