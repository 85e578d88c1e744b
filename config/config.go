package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	BindAddress string   `yaml:"bind_address" env:"BIND_ADDRESS" env-default:"0.0.0.0:8080"`
	TLSDomains  []string `yaml:"tls_domains" env:"TLS_DOMAINS" env-separator:","` // e.g. "example.com,example2.com"
	DebugMode   bool     `yaml:"debug_mode" env:"DEBUG_MODE" env-default:"false"`
	LogLevel    string   `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	MySQLDSN    string `yaml:"mysql_dsn" env:"MYSQL_DSN"`       // MySQL will be used if this is set
	PostgresDSN string `yaml:"postgres_dsn" env:"POSTGRES_DSN"` // PostgreSQL will be used if MYSQL_DSN is not configured and this is set
	SQLiteFile  string `yaml:"sqlite_file" env:"SQLITE_FILE" env-default:"yatube.db"`

	SessionKey        string `yaml:"session_key" env:"SESSION_KEY"`
	SessionCookieName string `yaml:"session_cookie_name" env:"SESSION_COOKIE_NAME" env-default:"sessionid"`
	SessionMaxAge     int    `yaml:"session_max_age" env:"SESSION_MAX_AGE" env-default:"1209600"` // 2 weeks, in seconds
	LoginURL          string `yaml:"login_url" env:"LOGIN_URL" env-default:"/auth/login/"`

	CORSAllowOrigins []string `yaml:"cors_allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:","`

	// Optional bootstrap account, granted PermissionAdmin on start
	AdminUsername string `yaml:"admin_username" env:"ADMIN_USERNAME"`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	minSessionKeyLen = 32
	debugSessionKey  = "insecure debug session key, do not use in production"
)

// Load reads configuration from the YAML file pointed by CONFIG_PATH (if any)
// and from environment variables. ENV wins over YAML, YAML over defaults.
func Load() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded values and fills in the debug session key when allowed.
func (c *Config) Validate() error {
	if c.Driver() == DriverSQLite && c.SQLiteFile == "" {
		return fmt.Errorf("no database configured: set MYSQL_DSN, POSTGRES_DSN or SQLITE_FILE")
	}
	if c.SessionKey == "" && c.DebugMode {
		c.SessionKey = debugSessionKey
	}
	if len(c.SessionKey) < minSessionKeyLen {
		return fmt.Errorf("SESSION_KEY must be at least %d characters (got %d)", minSessionKeyLen, len(c.SessionKey))
	}
	if !strings.HasPrefix(c.LoginURL, "/") || strings.HasPrefix(c.LoginURL, "//") {
		return fmt.Errorf("LOGIN_URL must be a local path (got %q)", c.LoginURL)
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be > 0 (got %d)", c.SessionMaxAge)
	}
	if (c.AdminUsername == "") != (c.AdminPassword == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	return nil
}

// Driver returns the database backend to use, MySQL having the highest priority
func (c *Config) Driver() string {
	if c.MySQLDSN != "" {
		return DriverMySQL
	} else if c.PostgresDSN != "" {
		return DriverPostgres
	}
	return DriverSQLite
}

// DSN returns the connection string for Driver()
func (c *Config) DSN() string {
	switch c.Driver() {
	case DriverMySQL:
		return c.MySQLDSN
	case DriverPostgres:
		return c.PostgresDSN
	}
	return c.SQLiteFile
}
