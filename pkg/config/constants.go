package config

// EnvPrefix is passed to envconfig; individual fields carry fully prefixed
// names already, so this stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "MEADOWLANE_APP_ENV"
	EnvPort   = "MEADOWLANE_APP_PORT"

	EnvDBDSN  = "MEADOWLANE_DB_DSN"
	EnvDBHost = "MEADOWLANE_DB_HOST"
	EnvDBUser = "MEADOWLANE_DB_USER"
	EnvDBName = "MEADOWLANE_DB_NAME"

	EnvRedisURL = "MEADOWLANE_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
