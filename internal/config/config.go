package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ConfigDirName  = ".container-runtime"
	ConfigFileName = "config.yaml"
)

// Limits overrides the fixed cgroup resource limits from spec §4.2.
// A zero value means "use the hardcoded default."
type Limits struct {
	CPUQuotaMicros  int64 `yaml:"cpuQuotaMicros,omitempty"`
	CPUPeriodMicros int64 `yaml:"cpuPeriodMicros,omitempty"`
	MemoryBytes     int64 `yaml:"memoryBytes,omitempty"`
	PidsMax         int64 `yaml:"pidsMax,omitempty"`
}

// Config is the operator-tunable YAML config file.
type Config struct {
	// DefaultInterface overrides the fallback interface name used when
	// "ip route show default" output can't be parsed (§4.3).
	DefaultInterface string `yaml:"defaultInterface,omitempty"`
	Limits           Limits `yaml:"limits,omitempty"`
}

func (c *Config) normalize() {
	if c.DefaultInterface == "" {
		c.DefaultInterface = "eth0"
	}
}

// Path returns the conventional config file location under home.
func Path(home string) string {
	return filepath.Join(home, ConfigDirName, ConfigFileName)
}

// Load reads and parses the config file at Path(home). A missing file
// is not an error — it yields a normalized zero-value Config, the same
// load-or-default tolerance the teacher's bundle metadata loader
// applies to an absent manifest. A malformed file IS an error: a
// present-but-broken config is an operator mistake, not a degraded
// state to silently paper over.
func Load(home string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(Path(home))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.normalize()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", Path(home), err)
	}
	cfg.normalize()
	return cfg, nil
}
