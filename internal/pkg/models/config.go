package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Pricing  PricingFileConfig
	Dispatch DispatchConfig
	Booking  BookingConfig
	Logger   LoggerConfig
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

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AdminConfig contains credentials for the admin console login
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash
}

// PricingFileConfig points at the yaml file holding default fare tables
type PricingFileConfig struct {
	DefaultsPath string
	Currency     string
	GSTPercent   float64
}

// DispatchConfig contains driver matching configuration
type DispatchConfig struct {
	SearchRadiusKm float64
	SearchTimeout  int // seconds, overall budget for one booking's search
	SearchRetries  int // how many times the pool is re-scanned before giving up
	OfferTTL       int // seconds a single driver offer stays open
}

// BookingConfig contains rider workflow configuration
type BookingConfig struct {
	FreeCancelWindow int // seconds after confirmation during which cancelling is free
	CancellationFee  int // flat fee in rupees once the window has passed
	CommissionRate   float64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
