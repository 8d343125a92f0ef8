package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/spf13/viper"
)

var v = newViper()

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()
	return vp
}

// InitConfig loads the .env file at configPath when running locally and
// returns the configuration read from the environment.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ridepay")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "dev")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "0.0.0.0")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 15)

	configs.Storage.Driver = GetEnv("STORAGE_DRIVER", "postgres")

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "postgres")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "ridepay")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)
	configs.Database.MigrateOnStart = GetEnvAsBool("DB_MIGRATE_ON_START", false)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Event bus config
	configs.EventBus.Type = GetEnv("EVENT_BUS", "nats")
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")
	configs.NSQ.NSQDAddress = GetEnv("NSQ_NSQD_ADDRESS", "localhost:4150")
	configs.NSQ.LookupdAddress = GetEnv("NSQ_LOOKUPD_ADDRESS", "")
	configs.NSQ.Channel = GetEnv("NSQ_CHANNEL", "ridepay")
	configs.NSQ.MaxAttempts = GetEnvAsInt("NSQ_MAX_ATTEMPTS", 5)

	// Auth config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")
	configs.APIKey.Internal = GetEnv("API_KEY_INTERNAL", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "ridepay")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/ridepay.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	// Maps config
	configs.Maps.Provider = GetEnv("MAPS_PROVIDER", "haversine")
	configs.Maps.APIKey = GetEnv("MAPS_API_KEY", "")
	configs.Maps.RoadFactor = GetEnvAsFloat("MAPS_ROAD_FACTOR", 1.3)
	configs.Maps.AvgSpeedKmh = GetEnvAsFloat("MAPS_AVG_SPEED_KMH", 30)
	configs.Maps.RequestTimeout = GetEnvAsInt("MAPS_REQUEST_TIMEOUT", 5)

	// Pricing config
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "USD")
	configs.Pricing.BaseFare = GetEnvAsFloat("PRICING_BASE_FARE", 2.50)
	configs.Pricing.PerKmRates = map[string]float64{
		string(models.VehicleClassEconomy): GetEnvAsFloat("PRICING_PER_KM_ECONOMY", 1.20),
		string(models.VehicleClassComfort): GetEnvAsFloat("PRICING_PER_KM_COMFORT", 1.60),
		string(models.VehicleClassPremium): GetEnvAsFloat("PRICING_PER_KM_PREMIUM", 2.20),
		string(models.VehicleClassXL):      GetEnvAsFloat("PRICING_PER_KM_XL", 1.80),
	}
	configs.Pricing.PerMinuteRate = GetEnvAsFloat("PRICING_PER_MINUTE", 0.25)
	configs.Pricing.TaxRate = GetEnvAsFloat("PRICING_TAX_RATE", 0.08)
	configs.Pricing.SurgeFactor = GetEnvAsFloat("PRICING_SURGE_FACTOR", 1.0)

	// Dispatch config
	configs.Dispatch.SearchRadiusKm = GetEnvAsFloat("DISPATCH_SEARCH_RADIUS_KM", 5.0)
	configs.Dispatch.MaxCandidates = GetEnvAsInt("DISPATCH_MAX_CANDIDATES", 10)

	// Rides config
	configs.Rides.PlatformFeeRate = GetEnvAsFloat("RIDES_PLATFORM_FEE_RATE", 0.15)

	// Wallet config
	configs.Wallet.Currency = GetEnv("WALLET_CURRENCY", "USD")
	configs.Wallet.DailyLimit = GetEnvAsFloat("WALLET_DAILY_LIMIT", 500)
	configs.Wallet.MonthlyLimit = GetEnvAsFloat("WALLET_MONTHLY_LIMIT", 5000)

	// Rate limit config
	configs.RateLimit.RideRequests = GetEnvAsInt("RATE_LIMIT_RIDE_REQUESTS", 10)
	configs.RateLimit.PeriodSeconds = GetEnvAsInt("RATE_LIMIT_PERIOD_SECONDS", 60)

	return configs
}

// Helper functions to get environment variables with different types.
// Values that fail to parse fall back to the default.
func GetEnv(key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := castInt(key)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := castBool(key)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := castFloat(key)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}
