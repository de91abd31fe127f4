package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Catalog      CatalogConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KANZ_APP_ENV" required:"true"`
	Port         string `envconfig:"KANZ_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"KANZ_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KANZ_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KANZ_DB_DSN"`
	Driver string `envconfig:"KANZ_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"KANZ_DB_HOST"`
	LegacyPort     int    `envconfig:"KANZ_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"KANZ_DB_USER"`
	LegacyPassword string `envconfig:"KANZ_DB_PASSWORD"`
	LegacyName     string `envconfig:"KANZ_DB_NAME"`
	LegacySSLMode  string `envconfig:"KANZ_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"KANZ_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KANZ_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KANZ_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KANZ_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the SQLite driver is selected (dev/test boots).
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"KANZ_REDIS_URL" required:"true"`
	Address      string        `envconfig:"KANZ_REDIS_ADDR"`
	Password     string        `envconfig:"KANZ_REDIS_PASSWORD"`
	DB           int           `envconfig:"KANZ_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KANZ_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KANZ_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KANZ_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KANZ_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KANZ_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	// FetchDelay simulates upstream latency on catalog reads. The web
	// client expects a short spinner; keep 0 for tests.
	FetchDelay time.Duration `envconfig:"KANZ_CATALOG_FETCH_DELAY" default:"0s"`
	SeedOnBoot bool          `envconfig:"KANZ_CATALOG_SEED_ON_BOOT" default:"true"`
}

type CartConfig struct {
	SlotTTL time.Duration `envconfig:"KANZ_CART_SLOT_TTL" default:"720h"`
	// MaxSessions caps the in-memory session cache; session cookies are
	// client-minted, so the cache must not grow with forged ids.
	MaxSessions int `envconfig:"KANZ_CART_MAX_SESSIONS" default:"10000"`
}

type CheckoutConfig struct {
	ShippingFee           int           `envconfig:"KANZ_CHECKOUT_SHIPPING_FEE" default:"150"`
	FreeShippingThreshold int           `envconfig:"KANZ_CHECKOUT_FREE_SHIPPING_THRESHOLD" default:"5000"`
	TaxRate               string        `envconfig:"KANZ_CHECKOUT_TAX_RATE" default:"0.05"`
	ProcessingDelay       time.Duration `envconfig:"KANZ_CHECKOUT_PROCESSING_DELAY" default:"1500ms"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KANZ_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		db.DSN = "file::memory:?cache=shared"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
