// Package config parses the agent's --vaccel-config flag: a
// comma-separated key=value list, not a file format, so none of the
// pack's file-config libraries (viper, BurntSushi/toml) fit.
package config

import (
	"strconv"
	"strings"

	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// VaccelConfig holds the settings an operator can pass through
// --vaccel-config, mirroring the knobs the native runtime itself
// exposes via its own config file in the real deployment.
type VaccelConfig struct {
	Plugins          string
	LogLevel         uint8
	LogFile          string
	ProfilingEnabled bool
	VersionIgnore    bool
}

// Parse reads a comma-separated key=value list such as
// "plugins=libvaccel-noop.so,log_level=4,profiling_enabled=true".
// Unknown keys are rejected rather than silently ignored, since a typo
// in this flag would otherwise fail silent on the runtime side.
func Parse(raw string) (VaccelConfig, error) {
	var cfg VaccelConfig
	if raw == "" {
		return cfg, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return cfg, vaccelerr.NewProtocolError("malformed --vaccel-config entry %q, want key=value", pair)
		}
		key, val := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		switch key {
		case "plugins":
			cfg.Plugins = val
		case "log_level":
			n, err := strconv.ParseUint(val, 10, 8)
			if err != nil {
				return cfg, vaccelerr.NewProtocolError("--vaccel-config log_level=%q: %v", val, err)
			}
			cfg.LogLevel = uint8(n)
		case "log_file":
			cfg.LogFile = val
		case "profiling_enabled":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return cfg, vaccelerr.NewProtocolError("--vaccel-config profiling_enabled=%q: %v", val, err)
			}
			cfg.ProfilingEnabled = b
		case "version_ignore":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return cfg, vaccelerr.NewProtocolError("--vaccel-config version_ignore=%q: %v", val, err)
			}
			cfg.VersionIgnore = b
		default:
			return cfg, vaccelerr.NewProtocolError("unknown --vaccel-config key %q", key)
		}
	}
	return cfg, nil
}

// ZapLevel maps the agent's own log_level scale (0 quietest) onto a
// zapcore level name understood by internal/vlog.
func (c VaccelConfig) ZapLevel() string {
	switch {
	case c.LogLevel == 0:
		return "error"
	case c.LogLevel == 1:
		return "warn"
	case c.LogLevel <= 3:
		return "info"
	default:
		return "debug"
	}
}
