package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Mode: "release",
			Host: "127.0.0.1",
			Port: 8080,
		},
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     7,
			MaxSize:    100,
		},
		Queue: Queue{
			Label:           "ringqueue",
			InitialCapacity: 1,
			MaxCapacity:     queue.MaxCapacity,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, Validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields absent from data, and validates.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "failed to parse config")
	}
	return Validate(*cfg)
}

var validate = validator.New()

// Validate checks the struct tags of cfg.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
