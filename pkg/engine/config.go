package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/loom/pkg/graphics"
)

// CoreVersion is the version of the composition core. A loom.yaml that pins
// engine.version must name the same major version.
const CoreVersion = "v0.4.0"

// ConfigFile is the name of the optional configuration file.
const ConfigFile = "loom.yaml"

const (
	defaultTitle          = "loom"
	defaultWidth          = 800
	defaultHeight         = 600
	defaultCaptureTimeout = 5 * time.Second
)

// Config represents the optional loom.yaml configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Render RenderConfig `yaml:"render"`
	Errors ErrorsConfig `yaml:"errors"`
	Engine EngineConfig `yaml:"engine"`
	Debug  DebugConfig  `yaml:"debug"`
}

// WindowConfig contains the initial window settings.
type WindowConfig struct {
	Title  string  `yaml:"title,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// CaptureTimeout bounds how long a frame may wait for the backend,
	// written as a Go duration ("250ms", "5s").
	CaptureTimeout time.Duration `yaml:"capture_timeout,omitempty"`
	// TraceSamples is the number of frames kept by the frame trace.
	TraceSamples int `yaml:"trace_samples,omitempty"`
}

// ErrorsConfig controls error reporting.
type ErrorsConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// EngineConfig pins the core version the application was written against.
type EngineConfig struct {
	Version string `yaml:"version,omitempty"`
}

// DebugConfig enables the HTTP inspection server.
type DebugConfig struct {
	// Addr is the listen address, for example "localhost:9311". Empty
	// disables the server.
	Addr string `yaml:"addr,omitempty"`
	// RuntimeInterval is the memory sampling period of the /runtime
	// endpoint.
	RuntimeInterval time.Duration `yaml:"runtime_interval,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Title           string
	Size            graphics.Size
	Scale           float64
	CaptureTimeout  time.Duration
	TraceSamples    int
	Verbose         bool
	EngineVersion   string
	DebugAddr       string
	RuntimeInterval time.Duration
}

// DefaultConfig returns the configuration used when no loom.yaml exists.
func DefaultConfig() *Resolved {
	resolved, _ := (&Config{}).Resolve()
	return resolved
}

// LoadOptional reads loom.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a loom.yaml document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	return &cfg, nil
}

// LoadConfig loads loom.yaml from dir (if present) and resolves defaults.
func LoadConfig(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve fills in defaults and validates the configuration.
func (c *Config) Resolve() (*Resolved, error) {
	title := strings.TrimSpace(c.Window.Title)
	if title == "" {
		title = defaultTitle
	}

	width, height := c.Window.Width, c.Window.Height
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid window size %gx%g", width, height)
	}
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	scale := c.Window.Scale
	if scale < 0 {
		return nil, fmt.Errorf("invalid window scale %g", scale)
	}
	if scale == 0 {
		scale = 1
	}

	timeout := c.Render.CaptureTimeout
	if timeout <= 0 {
		timeout = defaultCaptureTimeout
	}

	version := strings.TrimSpace(c.Engine.Version)
	if version == "" {
		version = CoreVersion
	}
	if err := checkVersion(version); err != nil {
		return nil, err
	}

	return &Resolved{
		Title:           title,
		Size:            graphics.Size{Width: width, Height: height},
		Scale:           scale,
		CaptureTimeout:  timeout,
		TraceSamples:    c.Render.TraceSamples,
		Verbose:         c.Errors.Verbose,
		EngineVersion:   version,
		DebugAddr:       strings.TrimSpace(c.Debug.Addr),
		RuntimeInterval: c.Debug.RuntimeInterval,
	}, nil
}

// checkVersion accepts versions with or without the leading "v" and
// requires the same major version as CoreVersion.
func checkVersion(version string) error {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid engine.version %q", version)
	}
	if semver.Major(version) != semver.Major(CoreVersion) {
		return fmt.Errorf("engine.version %s is incompatible with core %s", version, CoreVersion)
	}
	if semver.Compare(version, CoreVersion) > 0 {
		return fmt.Errorf("engine.version %s is newer than core %s", version, CoreVersion)
	}
	return nil
}
