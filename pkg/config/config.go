package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig namespace shared by every section.
const EnvPrefix = "INSIGHT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "INSIGHT_DB_DSN"
	EnvDBHost = "INSIGHT_DB_HOST"
	EnvDBUser = "INSIGHT_DB_USER"
	EnvDBName = "INSIGHT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Password PasswordConfig
	Admin    AdminConfig
	Uploads  UploadsConfig
	CORS     CORSConfig
}

// Load builds the immutable configuration from the environment. It is called
// once in cmd/api and the value is passed to components explicitly.
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
	Env      string `envconfig:"INSIGHT_APP_ENV" default:"dev"`
	Port     string `envconfig:"INSIGHT_APP_PORT" default:"8000"`
	LogLevel string `envconfig:"INSIGHT_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"INSIGHT_DB_DSN"`
	Driver string `envconfig:"INSIGHT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"INSIGHT_DB_HOST"`
	LegacyPort     int    `envconfig:"INSIGHT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"INSIGHT_DB_USER"`
	LegacyPassword string `envconfig:"INSIGHT_DB_PASSWORD"`
	LegacyName     string `envconfig:"INSIGHT_DB_NAME"`
	LegacySSLMode  string `envconfig:"INSIGHT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"INSIGHT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"INSIGHT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"INSIGHT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"INSIGHT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the local sqlite driver was requested. Used for
// local development and the repository test suites.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type JWTConfig struct {
	Secret            string `envconfig:"INSIGHT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"INSIGHT_JWT_ISSUER" default:"insight-api"`
	ExpirationMinutes int    `envconfig:"INSIGHT_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"INSIGHT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"INSIGHT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"INSIGHT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"INSIGHT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"INSIGHT_ARGON_KEY_LEN" default:"32"`
}

// AdminConfig carries the default credentials of the single admin identity
// provisioned at startup.
type AdminConfig struct {
	Username string `envconfig:"INSIGHT_ADMIN_USERNAME" default:"insight"`
	Password string `envconfig:"INSIGHT_ADMIN_PASSWORD" default:"Parol13!!"`
}

type UploadsConfig struct {
	Dir          string `envconfig:"INSIGHT_UPLOADS_DIR" default:"uploads"`
	PublicPrefix string `envconfig:"INSIGHT_UPLOADS_PUBLIC_PREFIX" default:"/uploads"`
	MaxUploadMB  int    `envconfig:"INSIGHT_MAX_UPLOAD_MB" default:"20"`
}

// MaxUploadBytes converts the configured megabyte limit for multipart bodies.
func (u UploadsConfig) MaxUploadBytes() int64 {
	if u.MaxUploadMB <= 0 {
		return 20 << 20
	}
	return int64(u.MaxUploadMB) << 20
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"INSIGHT_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:4000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.IsSQLite() {
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
