package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server Server
	Mail   Mail
	Log    Log
}

type Server struct {
	Port            string        `env:"PORT,default=8080"`
	Env             string        `env:"APP_ENV,default=development"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,default=15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES,default=65536"`
}

// Mail holds the SMTP settings for the contact relay. None of them are
// required for the process to start; see Missing.
type Mail struct {
	Host      string        `env:"SMTP_HOST"`
	Port      string        `env:"SMTP_PORT"`
	User      string        `env:"SMTP_USER"`
	Password  string        `env:"SMTP_PASS"`
	Recipient string        `env:"CONTACT_RECIPIENT"`
	FromEmail string        `env:"CONTACT_FROM_EMAIL"`
	Timeout   time.Duration `env:"SMTP_TIMEOUT,default=30s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT"`
}

func (s Server) Production() bool {
	return strings.EqualFold(s.Env, "production")
}

// Addr is the listen address for the HTTP server.
func (s Server) Addr() string {
	return ":" + s.Port
}

// To returns the inbox that receives submissions, falling back to the
// SMTP user.
func (m Mail) To() string {
	if v := strings.TrimSpace(m.Recipient); v != "" {
		return v
	}
	return strings.TrimSpace(m.User)
}

// From returns the sender address, falling back to the SMTP user.
func (m Mail) From() string {
	if v := strings.TrimSpace(m.FromEmail); v != "" {
		return v
	}
	return strings.TrimSpace(m.User)
}

// Missing lists the env keys that must be set before mail can be relayed.
func (m Mail) Missing() []string {
	var missing []string
	for _, f := range []struct {
		key, value string
	}{
		{"SMTP_HOST", m.Host},
		{"SMTP_PORT", m.Port},
		{"SMTP_USER", m.User},
		{"SMTP_PASS", m.Password},
		{"CONTACT_RECIPIENT", m.To()},
		{"CONTACT_FROM_EMAIL", m.From()},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.key)
		}
	}
	return missing
}

func (m Mail) Configured() bool {
	if len(m.Missing()) > 0 {
		return false
	}
	_, err := m.PortNumber()
	return err == nil
}

func (m Mail) PortNumber() (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(m.Port))
	if err != nil {
		return 0, fmt.Errorf("SMTP_PORT must be a valid number")
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("SMTP_PORT must be between 1 and 65535")
	}
	return port, nil
}

func LoadConfigFromEnv(ctx context.Context) (*Config, error) {
	return LoadConfig(ctx, envconfig.OsLookuper())
}

// LoadConfig reads the configuration from l. Tests pass a MapLookuper.
func LoadConfig(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
		if cfg.Server.Production() {
			cfg.Log.Format = "json"
		}
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil {
		errors = append(errors, "PORT must be a valid number")
	} else if port < 1 || port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	if cfg.Server.RequestTimeout <= 0 {
		errors = append(errors, "REQUEST_TIMEOUT must be positive")
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		errors = append(errors, "SHUTDOWN_TIMEOUT must be positive")
	}

	if cfg.Server.MaxBodyBytes <= 0 {
		errors = append(errors, "MAX_BODY_BYTES must be positive")
	}

	if cfg.Mail.Timeout <= 0 {
		errors = append(errors, "SMTP_TIMEOUT must be positive")
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "", "console", "json":
	default:
		errors = append(errors, "LOG_FORMAT must be console or json")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
