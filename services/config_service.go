package services

import (
	"encoding/json"
	"errors"

	"github.com/TarunBali/menu-magic-mobile-dine/repository"
)

// storage key for the runtime configuration record
const configKey = "restaurant_app_config"

var ErrBadConfig = errors.New("failed to parse configuration file, please check the format")

type APIKeys struct {
	Payments      string `json:"payments"`
	Analytics     string `json:"analytics"`
	Notifications string `json:"notifications"`
}

type APIEndpoints struct {
	Orders   string `json:"orders"`
	Auth     string `json:"auth"`
	Payments string `json:"payments"`
}

type Features struct {
	LiveOrderTracking bool `json:"liveOrderTracking"`
	RealTimeChat      bool `json:"realTimeChat"`
	AdvancedAnalytics bool `json:"advancedAnalytics"`
}

// AppConfig is the single runtime configuration record. In demo mode every
// external call is simulated locally.
type AppConfig struct {
	IsDemo       bool         `json:"isDemo"`
	APIKeys      APIKeys      `json:"apiKeys"`
	APIEndpoints APIEndpoints `json:"apiEndpoints"`
	Features     Features     `json:"features"`
}

func defaultConfig() AppConfig {
	return AppConfig{
		IsDemo: true,
		APIKeys: APIKeys{
			Payments:      "demo_key",
			Analytics:     "demo_key",
			Notifications: "demo_key",
		},
		APIEndpoints: APIEndpoints{
			Orders:   "/api/orders",
			Auth:     "/api/auth",
			Payments: "/api/payments",
		},
	}
}

type ConfigService struct {
	Repo *repository.SettingsRepository
}

func NewConfigService(repo *repository.SettingsRepository) *ConfigService {
	return &ConfigService{Repo: repo}
}

// Get returns the stored configuration, or the demo defaults when nothing has
// been stored yet.
func (s *ConfigService) Get() (AppConfig, error) {
	raw, ok, err := s.Repo.Get(configKey)
	if err != nil {
		return defaultConfig(), err
	}
	if !ok {
		return defaultConfig(), nil
	}
	cfg := defaultConfig()
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		// ignore a corrupt row rather than lock the app out
		return defaultConfig(), nil
	}
	return cfg, nil
}

// LoadFromFile merges an uploaded JSON config over the current one and flips
// demo mode off. Absent keys keep their current values; an explicit isDemo in
// the file wins over the flip. A parse failure mutates nothing.
func (s *ConfigService) LoadFromFile(content []byte) (AppConfig, error) {
	cfg, err := s.Get()
	if err != nil {
		return cfg, err
	}

	merged := cfg
	merged.IsDemo = false
	if err := json.Unmarshal(content, &merged); err != nil {
		return cfg, ErrBadConfig
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return cfg, err
	}
	if err := s.Repo.Set(configKey, string(raw)); err != nil {
		return cfg, err
	}
	return merged, nil
}

// ResetToDemo discards the stored overrides.
func (s *ConfigService) ResetToDemo() (AppConfig, error) {
	if err := s.Repo.Delete(configKey); err != nil {
		return defaultConfig(), err
	}
	return defaultConfig(), nil
}
