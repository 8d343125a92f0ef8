package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	EventBus  EventBusConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Maps      MapsConfig
	Pricing   PricingConfig
	Dispatch  DispatchConfig
	Rides     RidesConfig
	Wallet    WalletConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// StorageConfig selects the persistence and locator backends
type StorageConfig struct {
	// Driver is "postgres" (default) or "memory"
	Driver string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	IdleConns      int
	MigrateOnStart bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// EventBusConfig selects the event transport
type EventBusConfig struct {
	// Type is "nats" (default) or "nsq"
	Type string
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
	Channel        string
	MaxAttempts    int
}

// JWTConfig contains JWT verification configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// APIKeyConfig contains keys accepted on internal routes
type APIKeyConfig struct {
	Internal string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	// Type is "file", "console" or "both"
	Type string
}

// MapsConfig configures the route estimator
type MapsConfig struct {
	// Provider is "haversine" (default) or "google"
	Provider       string
	APIKey         string
	RoadFactor     float64
	AvgSpeedKmh    float64
	RequestTimeout int
}

// PricingConfig contains fare rates
type PricingConfig struct {
	Currency      string             `json:"currency"`
	BaseFare      float64            `json:"base_fare"`
	PerKmRates    map[string]float64 `json:"per_km_rates"`
	PerMinuteRate float64            `json:"per_minute_rate"`
	TaxRate       float64            `json:"tax_rate"`
	SurgeFactor   float64            `json:"surge_factor"`
}

// DispatchConfig contains driver search configuration
type DispatchConfig struct {
	SearchRadiusKm float64 `json:"search_radius_km"`
	MaxCandidates  int     `json:"max_candidates"`
}

// RidesConfig contains rides service specific configuration
type RidesConfig struct {
	PlatformFeeRate float64 `json:"platform_fee_rate"`
}

// WalletConfig contains defaults for lazily created wallets
type WalletConfig struct {
	Currency     string  `json:"currency"`
	DailyLimit   float64 `json:"daily_limit"`
	MonthlyLimit float64 `json:"monthly_limit"`
}

// RateLimitConfig bounds ride requests per actor
type RateLimitConfig struct {
	RideRequests  int
	PeriodSeconds int
}
