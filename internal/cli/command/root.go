// Package command provides CLI command definitions for syncvault-cli.
//
// The tool operates directly on the on-disk cache the library manages,
// for operators debugging what a restricted auxiliary process would
// see: which snapshot is cached, whether an event arrived, and how a
// room would be labeled.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/syncvault-go/internal/cli/output"
	"github.com/yndnr/syncvault-go/internal/infra/buildinfo"
	"github.com/yndnr/syncvault-go/internal/infra/confloader"
	"github.com/yndnr/syncvault-go/internal/storage/syncfile"
	"github.com/yndnr/syncvault-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "syncvault-cli",
		Usage:   "inspect and manage the on-disk sync response cache",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			InfoCommand(),
			EventCommand(),
			SummaryCommand(),
			AccountDataCommand(),
			PathCommand(),
			WatchCommand(),
			DeleteCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "identity",
			Aliases: []string{"i"},
			Usage:   "identity namespace the cache was opened with (e.g. a user ID)",
			EnvVars: []string{"SYNCVAULT_STORE_IDENTITY"},
		},
		&cli.StringFlag{
			Name:    "shared-dir",
			Aliases: []string{"d"},
			Usage:   "shared storage area root (defaults to the per-user cache dir)",
			EnvVars: []string{"SYNCVAULT_STORE_SHARED_DIR"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
			EnvVars: []string{"SYNCVAULT_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json",
			Value:   "table",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level: debug, info, warn, error",
			EnvVars: []string{"SYNCVAULT_LOG_LEVEL"},
			Value:   "warn",
		},
	}
}

// cliConfig is the file/env-backed configuration. The nesting mirrors
// the env key layout: SYNCVAULT_STORE_SHARED_DIR maps to store.shared.dir.
type cliConfig struct {
	Store struct {
		Identity string `koanf:"identity"`
		Shared   struct {
			Dir string `koanf:"dir"`
		} `koanf:"shared"`
	} `koanf:"store"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

// openStore resolves configuration (flags override file and env) and
// opens the store for inspection.
func openStore(c *cli.Context) (*syncfile.Store, error) {
	var cfg cliConfig
	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}
	if err := confloader.NewLoader(opts...).Load(&cfg); err != nil {
		return nil, err
	}

	identity := cfg.Store.Identity
	if c.IsSet("identity") || identity == "" {
		identity = c.String("identity")
	}
	sharedDir := cfg.Store.Shared.Dir
	if c.IsSet("shared-dir") {
		sharedDir = c.String("shared-dir")
	}
	level := c.String("log-level")
	if cfg.Log.Level != "" && !c.IsSet("log-level") {
		level = cfg.Log.Level
	}

	log := logger.New(logger.Config{Level: level, Format: "text", Output: os.Stderr})

	store, err := syncfile.Open(syncfile.Config{
		SharedDir: sharedDir,
		Identity:  identity,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

func formatter(c *cli.Context) output.Formatter {
	return output.NewFormatter(output.Format(c.String("output")))
}
