package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/util/heap/tools/config"
)

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "sort, merge and inspect lines with a binary min-heap",
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "sort lines from files or stdin",
				ArgsUsage: "[file ...]",
				Action:    sortLines,
				Flags:     settingsFlags(),
			},
			{
				Name:      "merge",
				Usage:     "merge already sorted files into one sorted stream",
				ArgsUsage: "file [file ...]",
				Action:    mergeFiles,
				Flags:     settingsFlags(),
			},
			{
				Name:      "visualize",
				Usage:     "show the heap layout while adding and removing values",
				ArgsUsage: "value [value ...]",
				Action:    visualizeValues,
				Flags:     settingsFlags(),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a TOML config file",
		},
		&cli.StringFlag{
			Name:  "ordering",
			Usage: "natural, length, numeric or mixed",
		},
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "emit the largest elements first",
		},
		&cli.StringFlag{
			Name:  "absent-token",
			Usage: "input line that stands for an absent element",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
	}
}

// loadSettings reads the config file, if any, and applies flag overrides.
func loadSettings(cmd *cli.Command) (config.ConfigFile, *slog.Logger, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Unmarshal(path); err != nil {
			return cfg, nil, err
		}
	}

	if cmd.IsSet("ordering") {
		cfg.Ordering = config.Ordering(cmd.String("ordering"))
	}
	if cmd.IsSet("reverse") {
		cfg.Reverse = cmd.Bool("reverse")
	}
	if cmd.IsSet("absent-token") {
		cfg.AbsentToken = cmd.String("absent-token")
	}
	if cmd.IsSet("log-level") {
		cfg.Logging.Level = config.LoggingLevel(cmd.String("log-level"))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, errors.Wrap(err, "bad settings")
	}

	logger := newLogger(os.Stderr, cfg.SlogLevel())
	logger.Debug("Loaded settings",
		"ordering", cfg.Ordering,
		"reverse", cfg.Reverse,
		"absent_token", cfg.AbsentToken,
	)

	return cfg, logger, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}
