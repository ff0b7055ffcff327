// Package config loads the service configuration from the environment and an
// optional YAML file.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	OIDC     OIDCConfig     `yaml:"oidc"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"ADDR"                    env-default:":8080"`
	WebDir          string        `yaml:"web_dir"          env:"WEB_DIR"                 env-default:"web"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL selects
// the in-memory store.
type DatabaseConfig struct {
	URL             string        `yaml:"url"               env:"DATABASE_URL"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DATABASE_MAX_OPEN_CONNS"    env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DATABASE_MAX_IDLE_CONNS"    env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `yaml:"level"     env:"LOG_LEVEL"     env-default:"info"`
	JSON     bool   `yaml:"json"      env:"LOG_JSON"      env-default:"false"`
	File     string `yaml:"file"      env:"LOG_FILE"`
	ToStdout bool   `yaml:"to_stdout" env:"LOG_TO_STDOUT" env-default:"true"`
}

// AuthConfig holds session settings.
type AuthConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`
}

// OIDCConfig holds single sign-on settings. SSO is enabled only when all
// fields are set.
type OIDCConfig struct {
	Issuer       string `yaml:"issuer"        env:"OIDC_ISSUER"`
	ClientID     string `yaml:"client_id"     env:"OIDC_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"OIDC_CLIENT_SECRET"`
	RedirectURL  string `yaml:"redirect_url"  env:"OIDC_REDIRECT_URL"`
}

// Enabled reports whether SSO is fully configured.
func (o OIDCConfig) Enabled() bool {
	return o.Issuer != "" && o.ClientID != "" && o.ClientSecret != "" && o.RedirectURL != ""
}

func (o OIDCConfig) partial() bool {
	return !o.Enabled() && (o.Issuer != "" || o.ClientID != "" || o.ClientSecret != "" || o.RedirectURL != "")
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"   env:"METRICS_ENABLED"   env-default:"true"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"abbed"`
}
