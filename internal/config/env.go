package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Env struct {
	AppAddr string `yaml:"app_addr"`
	GinMode string `yaml:"gin_mode"`

	BackendURL string `yaml:"backend_url"`
	PublicURL  string `yaml:"public_url"`

	// SessionStore is "memory" or "mysql".
	SessionStore string `yaml:"session_store"`
	DBUser       string `yaml:"db_user"`
	DBPassword   string `yaml:"db_password"`
	DBAddr       string `yaml:"db_addr"`
	DBName       string `yaml:"db_name"`

	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	UpstreamTimeout    time.Duration `yaml:"upstream_timeout"`
	UpstreamRPS        float64       `yaml:"upstream_rps"`
	CookieSecure       bool          `yaml:"cookie_secure"`
	TimeZone           string        `yaml:"tz"`
}

func defaultEnv() Env {
	return Env{
		AppAddr:         ":8080",
		BackendURL:      "http://localhost:5000/api",
		PublicURL:       "http://localhost:3000",
		SessionStore:    "memory",
		DBUser:          "root",
		DBAddr:          "127.0.0.1:3306",
		DBName:          "orro_console",
		UpstreamTimeout: 15 * time.Second,
		UpstreamRPS:     10,
	}
}

// LoadEnv reads the console configuration. Defaults come from the YAML file
// named by CONSOLE_CONFIG when set; environment variables override it.
func LoadEnv() (Env, error) {
	env := defaultEnv()
	if path := strings.TrimSpace(os.Getenv("CONSOLE_CONFIG")); path != "" {
		if err := loadFile(path, &env); err != nil {
			return Env{}, err
		}
	}
	if err := applyOverrides(&env, os.Getenv); err != nil {
		return Env{}, err
	}
	env.BackendURL = strings.TrimRight(env.BackendURL, "/")
	env.PublicURL = strings.TrimRight(env.PublicURL, "/")
	return env, nil
}

func loadFile(path string, env *Env) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, env); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyOverrides(env *Env, getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	str("APP_ADDR", &env.AppAddr)
	str("GIN_MODE", &env.GinMode)
	str("BACKEND_URL", &env.BackendURL)
	str("PUBLIC_URL", &env.PublicURL)
	str("SESSION_STORE", &env.SessionStore)
	str("DB_USER", &env.DBUser)
	str("DB_PASSWORD", &env.DBPassword)
	str("DB_ADDR", &env.DBAddr)
	str("DB_NAME", &env.DBName)
	str("CONSOLE_TZ", &env.TimeZone)

	if v := strings.TrimSpace(getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		env.CORSAllowedOrigins = origins
	}
	if v := strings.TrimSpace(getenv("UPSTREAM_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("UPSTREAM_TIMEOUT: %w", err)
		}
		env.UpstreamTimeout = d
	}
	if v := strings.TrimSpace(getenv("UPSTREAM_RPS")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("UPSTREAM_RPS: %w", err)
		}
		env.UpstreamRPS = f
	}
	if v := strings.TrimSpace(getenv("COOKIE_SECURE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("COOKIE_SECURE: %w", err)
		}
		env.CookieSecure = b
	}

	switch env.SessionStore {
	case "memory", "mysql":
	default:
		return fmt.Errorf("SESSION_STORE must be memory or mysql, got %q", env.SessionStore)
	}
	return nil
}

// Location resolves TimeZone, falling back to the process local zone.
func (e Env) Location() *time.Location {
	if e.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(e.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
