package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mchmarny/cibil/pkg/config"
	"github.com/mchmarny/cibil/pkg/logging"
	"github.com/mchmarny/cibil/pkg/score"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	name = "cibil"
)

var (
	version = "v0.0.1-default"
	commit  = ""

	outputFormat = config.FormatJSON
	model        = score.Default()

	out io.Writer = os.Stdout

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
	}

	configDirFlag = &cli.StringFlag{
		Name:  "config",
		Usage: fmt.Sprintf("Path to the config directory (optional, defaults to $HOME/.%s)", name),
	}
)

func main() {
	logging.SetDefaultCLILogger("info")

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 name,
		Version:              fmt.Sprintf("%s - (commit: %s)", version, commit),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for computing CIBIL-style credit scores from borrower attributes",
		Flags: []cli.Flag{
			debugFlag,
			formatFlag,
			configDirFlag,
		},
		Commands: []*cli.Command{
			scoreCmd,
			componentsCmd,
			modelCmd,
		},
		Before: func(c *cli.Context) error {
			dir := c.String(configDirFlag.Name)
			if dir == "" {
				dir = getHomeDir()
			}

			cfg, err := config.ReadOrCreate(dir)
			if err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}

			level := cfg.LogLevel
			if c.Bool(debugFlag.Name) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(level)

			outputFormat = config.NormalizeFormat(cfg.Format)
			if c.IsSet(formatFlag.Name) {
				outputFormat = config.NormalizeFormat(c.String(formatFlag.Name))
			}

			model = score.Default()
			model.ClampComponents = cfg.ClampComponents

			slog.Debug("app configured",
				"config", dir,
				"format", outputFormat,
				"clamp_components", model.ClampComponents)

			return nil
		},
	}
}

func getHomeDir() string {
	dir, created, err := config.GetOrCreateHomeDir(name)
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}
	if created {
		slog.Debug("created app home dir", "path", dir)
	}
	return dir
}

func encode(v any) error {
	if outputFormat == config.FormatYAML {
		return yaml.NewEncoder(out).Encode(v)
	}
	e := json.NewEncoder(out)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
