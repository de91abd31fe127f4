package config

// EnvPrefix is passed to envconfig; individual fields carry fully
// prefixed names so the prefix is effectively documentation.
const EnvPrefix = "KANZ"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "KANZ_APP_ENV"
	EnvPort     = "KANZ_APP_PORT"
	EnvLogLevel = "KANZ_LOG_LEVEL"

	EnvDBDSN    = "KANZ_DB_DSN"
	EnvDBDriver = "KANZ_DB_DRIVER"
	EnvDBHost   = "KANZ_DB_HOST"
	EnvDBUser   = "KANZ_DB_USER"
	EnvDBName   = "KANZ_DB_NAME"

	EnvRedisURL = "KANZ_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
