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
	Session      SessionConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Gemini       GeminiConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"NAKSHATRA_APP_ENV" required:"true"`
	Port         string `envconfig:"NAKSHATRA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"NAKSHATRA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NAKSHATRA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"NAKSHATRA_DB_DSN"`
	Driver string `envconfig:"NAKSHATRA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"NAKSHATRA_DB_HOST"`
	LegacyPort     int    `envconfig:"NAKSHATRA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"NAKSHATRA_DB_USER"`
	LegacyPassword string `envconfig:"NAKSHATRA_DB_PASSWORD"`
	LegacyName     string `envconfig:"NAKSHATRA_DB_NAME"`
	LegacySSLMode  string `envconfig:"NAKSHATRA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"NAKSHATRA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NAKSHATRA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NAKSHATRA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NAKSHATRA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NAKSHATRA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"NAKSHATRA_REDIS_ADDR"`
	Password     string        `envconfig:"NAKSHATRA_REDIS_PASSWORD"`
	DB           int           `envconfig:"NAKSHATRA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NAKSHATRA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NAKSHATRA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NAKSHATRA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NAKSHATRA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NAKSHATRA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig controls the shopper cookie sessions stored in Redis.
type SessionConfig struct {
	CookieName string        `envconfig:"NAKSHATRA_SESSION_COOKIE_NAME" default:"nakshatra_session"`
	TTL        time.Duration `envconfig:"NAKSHATRA_SESSION_TTL" default:"168h"`
}

type JWTConfig struct {
	Secret            string `envconfig:"NAKSHATRA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"NAKSHATRA_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"NAKSHATRA_JWT_EXPIRATION_MINUTES" default:"720"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"NAKSHATRA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"NAKSHATRA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"NAKSHATRA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"NAKSHATRA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"NAKSHATRA_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"NAKSHATRA_AUTO_MIGRATE" default:"false"`
	SeedRoutes  bool `envconfig:"NAKSHATRA_SEED_ROUTES" default:"false"`
}

type GeminiConfig struct {
	APIKey  string        `envconfig:"NAKSHATRA_GEMINI_API_KEY"`
	Model   string        `envconfig:"NAKSHATRA_GEMINI_MODEL" default:"gemini-2.0-flash"`
	Timeout time.Duration `envconfig:"NAKSHATRA_GEMINI_TIMEOUT" default:"20s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"NAKSHATRA_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
