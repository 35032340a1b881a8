package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "NAKSHATRA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "NAKSHATRA_DB_DSN"
	EnvDBHost = "NAKSHATRA_DB_HOST"
	EnvDBUser = "NAKSHATRA_DB_USER"
	EnvDBName = "NAKSHATRA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
