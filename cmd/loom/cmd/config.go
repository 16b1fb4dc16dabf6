package cmd

import (
	"flag"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/loom/pkg/engine"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration loom would run with, as YAML: the values
from loom.yaml in --dir with defaults filled in.`,
		Usage: "loom config [--dir DIR]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dir := fs.String("dir", ".", "directory containing loom.yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := engine.LoadConfig(*dir)
	if err != nil {
		return err
	}
	resolved := engine.Config{
		Window: engine.WindowConfig{
			Title:  cfg.Title,
			Width:  cfg.Size.Width,
			Height: cfg.Size.Height,
			Scale:  cfg.Scale,
		},
		Render: engine.RenderConfig{
			CaptureTimeout: cfg.CaptureTimeout,
			TraceSamples:   cfg.TraceSamples,
		},
		Errors: engine.ErrorsConfig{Verbose: cfg.Verbose},
		Engine: engine.EngineConfig{Version: cfg.EngineVersion},
		Debug:  engine.DebugConfig{Addr: cfg.DebugAddr, RuntimeInterval: cfg.RuntimeInterval},
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(resolved); err != nil {
		return err
	}
	return enc.Close()
}
