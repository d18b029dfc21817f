package config

import (
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/navijation/njheap/util"
)

type Ordering string

const (
	OrderingNatural Ordering = "natural"
	OrderingLength  Ordering = "length"
	OrderingNumeric Ordering = "numeric"
	OrderingMixed   Ordering = "mixed"
)

type LoggingLevel string

const (
	LoggingLevelDebug LoggingLevel = "debug"
	LoggingLevelInfo  LoggingLevel = "info"
	LoggingLevelWarn  LoggingLevel = "warn"
	LoggingLevelError LoggingLevel = "error"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config file structure

type ConfigFile struct {
	Ordering    Ordering
	Reverse     bool
	AbsentToken string `toml:"absent_token"`
	Logging     LoggingConfig
}

type LoggingConfig struct {
	Level LoggingLevel
}

func Default() ConfigFile {
	return ConfigFile{
		Ordering:    OrderingNatural,
		AbsentToken: util.AbsentText,
		Logging: LoggingConfig{
			Level: LoggingLevelInfo,
		},
	}
}

// Unmarshal reads a TOML config file. Keys missing from the file keep their
// default values.
func Unmarshal(path string) (ConfigFile, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %q", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %q", path)
	}

	return cfg, cfg.Validate()
}

func (me *ConfigFile) Validate() error {
	switch me.Ordering {
	case OrderingNatural, OrderingLength, OrderingNumeric, OrderingMixed:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown ordering %q", me.Ordering)
	}

	if me.AbsentToken == "" {
		return errors.Wrap(ErrInvalidConfig, "absent_token must not be empty")
	}

	switch me.Logging.Level {
	case LoggingLevelDebug, LoggingLevelInfo, LoggingLevelWarn, LoggingLevelError:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown logging level %q", me.Logging.Level)
	}

	return nil
}

func (me *ConfigFile) SlogLevel() slog.Level {
	switch me.Logging.Level {
	case LoggingLevelDebug:
		return slog.LevelDebug
	case LoggingLevelWarn:
		return slog.LevelWarn
	case LoggingLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
