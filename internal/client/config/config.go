package config

import (
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/voyage/internal/client/client"
)

// Config holds runtime settings for the Voyage CLI.
//
// Fields:
//   - DataDir: directory holding the durable session database.
//   - LogLevel: debug, info, warn or error.
//   - LoginDelay, RegisterDelay, LogoutDelay, UpdateDelay: simulated latency
//     of the bundled credential service.
type Config struct {
	DataDir       string        `env:"VOYAGE_DATA_DIR"`
	LogLevel      string        `env:"VOYAGE_LOG_LEVEL"`
	LoginDelay    time.Duration `env:"VOYAGE_LOGIN_DELAY"`
	RegisterDelay time.Duration `env:"VOYAGE_REGISTER_DELAY"`
	LogoutDelay   time.Duration `env:"VOYAGE_LOGOUT_DELAY"`
	UpdateDelay   time.Duration `env:"VOYAGE_UPDATE_DELAY"`
}

const sessionDBFile = "session.db"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "voyage-data"
	c.LogLevel = "info"
	c.LoginDelay = time.Second
	c.RegisterDelay = 1500 * time.Millisecond
	c.LogoutDelay = 500 * time.Millisecond
	c.UpdateDelay = time.Second
}

// DatabasePath is the location of the durable session database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, sessionDBFile)
}

// Delays maps the configured latencies onto the credential service.
func (c *Config) Delays() client.Delays {
	return client.Delays{
		Login:    c.LoginDelay,
		Register: c.RegisterDelay,
		Logout:   c.LogoutDelay,
		Update:   c.UpdateDelay,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
