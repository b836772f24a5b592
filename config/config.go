// Package config loads application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// defaults lists every key that has a fallback value; each is also bound to its env name.
var defaults = map[string]any{
	"logging.level": "debug",

	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.shutdown_timeout": 5 * time.Second,
	"http.request_timeout":    3 * time.Second,

	"jwt.ttl":            time.Duration(0),
	"repository.backend": BackendMemory,

	"postgres.host":            "localhost",
	"postgres.port":            5432,
	"postgres.user":            "postgres",
	"postgres.password":        "postgres",
	"postgres.db_name":         "taskboard_db",
	"postgres.ssl_mode":        "disable",
	"postgres.migrations_dir":  "db/migrations",
	"postgres.migrate_timeout": 10 * time.Second,
	"postgres.query_timeout":   2 * time.Second,
	"postgres.max_conns":       10,
	"postgres.min_conns":       2,

	"redis.addr":     "",
	"redis.password": "",
	"redis.db":       0,

	"ratelimit.auth_requests": 5,
	"ratelimit.auth_window":   time.Minute,
}

// aliases are extra env names accepted for a key, after the canonical one.
var aliases = map[string][]string{
	"server.port": {"PORT"},
	"jwt.secret":  {"JWTSECRET"},
}

// NewConfig reads config/.env when present, then the environment, and validates the result.
// Variables already set in the environment win over the file.
func NewConfig() (*Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	bind(v, replacer, "jwt.secret")
	for key := range defaults {
		bind(v, replacer, key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func bind(v *viper.Viper, r *strings.Replacer, key string) {
	names := append([]string{key, strings.ToUpper(r.Replace(key))}, aliases[key]...)
	_ = v.BindEnv(names...)
}
