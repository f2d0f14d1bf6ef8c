package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/voyage/internal/flagx"
	"github.com/dmitrijs2005/voyage/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero, so a file may set a delay to "0s".
type JsonConfig struct {
	DataDir       *string         `json:"data_dir"`
	LogLevel      *string         `json:"log_level"`
	LoginDelay    *timex.Duration `json:"login_delay"`
	RegisterDelay *timex.Duration `json:"register_delay"`
	LogoutDelay   *timex.Duration `json:"logout_delay"`
	UpdateDelay   *timex.Duration `json:"update_delay"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Keys missing from the file keep their current value. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.RegisterDelay != nil {
		cfg.RegisterDelay = jc.RegisterDelay.Duration
	}
	if jc.LogoutDelay != nil {
		cfg.LogoutDelay = jc.LogoutDelay.Duration
	}
	if jc.UpdateDelay != nil {
		cfg.UpdateDelay = jc.UpdateDelay.Duration
	}
}
