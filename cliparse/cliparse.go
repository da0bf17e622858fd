package cliparse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultLockout is kickoff of the event. Predictions close at this instant.
const DefaultLockout = "2026-02-08T23:30:00Z"

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	JWTSecret         string
	AdminUsers        []string
	AdminPasswordHash string
	LockoutAt         time.Time
	PublicURL         string
}

// RegisterFlags adds the server flags to fs. Every flag also reads from the
// environment variable of the same name, uppercased with - replaced by _.
func RegisterFlags(fs *pflag.FlagSet) {
	// Network config (can be CLI args or env)
	fs.IntP("port", "p", 3318, "Server port (env: PORT)")
	RegisterDatabaseFlags(fs)
	fs.String("public-url", "http://localhost:3318", "Base URL used in invite links (env: PUBLIC_URL)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.String("jwt-secret", "", "Identity provider JWT signing secret (env: JWT_SECRET)")
	fs.String("admin-users", "", "Comma-separated user IDs allowed to announce results (env: ADMIN_USERS)")
	fs.String("admin-password-hash", "", "bcrypt hash of the admin password (env: ADMIN_PASSWORD_HASH)")

	fs.String("lockout-at", DefaultLockout, "RFC3339 instant predictions close, empty to never lock (env: LOCKOUT_AT)")
}

// RegisterDatabaseFlags adds only the database flags, for commands that
// never serve requests.
func RegisterDatabaseFlags(fs *pflag.FlagSet) {
	fs.StringP("database-url", "d", "", "Database URL (env: DATABASE_URL)")
	fs.StringP("database-type", "t", "sqlite", "Database type, sqlite or postgres (env: DATABASE_TYPE)")
}

// Load resolves the flags registered by RegisterFlags. Flags set on the
// command line take precedence over env, env over defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	v, err := bind(fs)
	if err != nil {
		return Config{}, err
	}

	cfg, err := loadDatabase(v)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = v.GetInt("port")
	cfg.JWTSecret = v.GetString("jwt-secret")
	cfg.AdminUsers = splitList(v.GetString("admin-users"))
	cfg.AdminPasswordHash = v.GetString("admin-password-hash")
	cfg.PublicURL = strings.TrimRight(v.GetString("public-url"), "/")

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", cfg.Port)
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if s := strings.TrimSpace(v.GetString("lockout-at")); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid lockout time %q: %w", s, err)
		}
		cfg.LockoutAt = t.UTC()
	}

	return cfg, nil
}

// LoadDatabase resolves the flags registered by RegisterDatabaseFlags.
func LoadDatabase(fs *pflag.FlagSet) (Config, error) {
	v, err := bind(fs)
	if err != nil {
		return Config{}, err
	}
	return loadDatabase(v)
}

func bind(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

func loadDatabase(v *viper.Viper) (Config, error) {
	cfg := Config{
		DatabaseURL:  v.GetString("database-url"),
		DatabaseType: strings.ToLower(v.GetString("database-type")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}
	return cfg, nil
}

// ParseFlags parses args and resolves the config against the environment
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("pickparty", pflag.ContinueOnError)
	RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Load(fs)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
