package servermanager

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. OLSPANEL_HOST.
	EnvPrefix = "OLSPANEL"

	defaultTimeoutSeconds = 30
)

// Config holds the connection settings the host stores for a server.
type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// VerifyTLS turns on certificate checks against the panel. Panels usually
	// serve self-signed certificates, so the zero value skips verification.
	VerifyTLS      bool   `mapstructure:"verify_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	LogLevel       string `mapstructure:"log_level"`
	EventsFile     string `mapstructure:"events_file"`
}

// SkipTLSVerify reports whether panel certificates go unchecked.
func (c Config) SkipTLSVerify() bool {
	return !c.VerifyTLS
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// String omits the password so the config can be logged.
func (c Config) String() string {
	return fmt.Sprintf("host=%s port=%s username=%s verify_tls=%t timeout=%s",
		c.Host, c.Port, c.Username, c.VerifyTLS, c.Timeout())
}

// LoadConfig merges defaults, the host-supplied settings and OLSPANEL_*
// environment variables, in increasing order of precedence. envFiles are
// loaded into the process environment first when present.
func LoadConfig(settings map[string]any, envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	v := viper.New()

	v.SetDefault("host", "")
	v.SetDefault("port", "")
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("verify_tls", false)
	v.SetDefault("timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("log_level", "info")
	v.SetDefault("events_file", "")

	if len(settings) > 0 {
		if err := v.MergeConfigMap(settings); err != nil {
			return Config{}, fmt.Errorf("merge settings: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		return Config{}, fmt.Errorf("invalid timeout_seconds (must be positive seconds)")
	}

	return cfg, nil
}
