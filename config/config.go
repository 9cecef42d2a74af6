package config

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Seed      SeedConfig
	Dashboard DashboardConfig
	Billing   BillingConfig
	Cache     CacheConfig
}

type AppConfig struct {
	Env string
}

type LogConfig struct {
	Level  string
	Format string
}

type SeedConfig struct {
	Dir string // empty means the embedded seed
}

type DashboardConfig struct {
	Floors             []int
	RecentAppointments int
}

type BillingConfig struct {
	CurrencySymbol string
	ServiceCharge  string // decimal rate, e.g. "0.05"
}

type CacheConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

func setDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("SEED_DIR", "")
	viper.SetDefault("DASHBOARD_FLOORS", "0,1,2,3,4")
	viper.SetDefault("DASHBOARD_RECENT_APPOINTMENTS", 6)
	viper.SetDefault("CURRENCY_SYMBOL", "৳")
	viper.SetDefault("RENT_SERVICE_CHARGE", "0.05")
	viper.SetDefault("CACHE_TTL", "0s")
	viper.SetDefault("CACHE_CLEANUP_INTERVAL", "10m")
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	floors, err := parseFloors(viper.GetString("DASHBOARD_FLOORS"))
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 0
	}

	cleanup, err := time.ParseDuration(viper.GetString("CACHE_CLEANUP_INTERVAL"))
	if err != nil {
		cleanup = 10 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Seed: SeedConfig{
			Dir: viper.GetString("SEED_DIR"),
		},
		Dashboard: DashboardConfig{
			Floors:             floors,
			RecentAppointments: viper.GetInt("DASHBOARD_RECENT_APPOINTMENTS"),
		},
		Billing: BillingConfig{
			CurrencySymbol: viper.GetString("CURRENCY_SYMBOL"),
			ServiceCharge:  viper.GetString("RENT_SERVICE_CHARGE"),
		},
		Cache: CacheConfig{
			TTL:             cacheTTL,
			CleanupInterval: cleanup,
		},
	}

	return config, nil
}

// parseFloors turns "0, 1,2" into []int{0, 1, 2}.
func parseFloors(raw string) ([]int, error) {
	var floors []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		floor, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.New("DASHBOARD_FLOORS must be a comma separated list of integers")
		}
		floors = append(floors, floor)
	}
	return floors, nil
}
