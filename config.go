package stderr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config controls which categories of output a Logger emits.
//
// Quiet suppresses everything except errors and fatal messages. Debug, Dev,
// Trace and Silly each enable an otherwise hidden category.
type Config struct {
	Quiet bool `koanf:"quiet" yaml:"quiet"`
	Dev   bool `koanf:"dev" yaml:"dev"`
	Debug bool `koanf:"debug" yaml:"debug"`
	Trace bool `koanf:"trace" yaml:"trace"`
	Silly bool `koanf:"silly" yaml:"silly"`
}

// Environment variables consulted by [ConfigFromEnv]. Only their presence
// matters; an empty value still enables the flag.
const (
	EnvQuiet = "QUIET_MODE"
	EnvDebug = "DEBUG_MODE"
	EnvDev   = "DEV_MODE"
	EnvTrace = "TRACE_MODE"
	EnvSilly = "SILLY_MODE"
)

var envKeys = map[string]string{
	EnvQuiet: "quiet",
	EnvDebug: "debug",
	EnvDev:   "dev",
	EnvTrace: "trace",
	EnvSilly: "silly",
}

// ConfigFromEnv builds a Config from the presence of the mode variables.
func ConfigFromEnv() Config {
	k := koanf.New(".")
	// The env provider never fails on its own; a failure here would only
	// leave every flag at its zero value.
	_ = loadEnv(k)
	return unmarshalConfig(k)
}

// LoadConfig reads an optional YAML file and overlays the mode variables on
// top of it. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}
	if err := loadEnv(k); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}
	return unmarshalConfig(k), nil
}

func loadEnv(k *koanf.Koanf) error {
	return k.Load(env.ProviderWithValue("", ".", func(key, _ string) (string, interface{}) {
		name, ok := envKeys[key]
		if !ok {
			return "", nil
		}
		return name, true
	}), nil)
}

func unmarshalConfig(k *koanf.Koanf) Config {
	return Config{
		Quiet: k.Bool("quiet"),
		Dev:   k.Bool("dev"),
		Debug: k.Bool("debug"),
		Trace: k.Bool("trace"),
		Silly: k.Bool("silly"),
	}
}
