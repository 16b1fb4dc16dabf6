package cmd

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/go-drift/loom/cmd/loom/internal/demo"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/engine"
	"github.com/go-drift/loom/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "capture",
		Short: "Render a demo to a PNG file",
		Long: `Render one frame of a bundled demo off-screen and write it as PNG.

The window size, scale and capture timeout come from loom.yaml in the
directory given by --dir (default: current directory).

Flags:
  -o FILE      Output file (default: <demo>.png, "-" for stdout)
  --dir DIR    Directory containing loom.yaml
  --tap NAME   Tap the accessibility node named NAME before capturing`,
		Usage: "loom capture <demo> [-o FILE] [--dir DIR] [--tap NAME]",
		Run:   runCapture,
	})
}

type captureOptions struct {
	output string
	dir    string
	taps   []string
}

func parseCaptureArgs(args []string) (string, captureOptions, error) {
	var opts captureOptions
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.output, "o", "", "output file")
	fs.StringVar(&opts.dir, "dir", ".", "directory containing loom.yaml")
	fs.Func("tap", "tap the node with this name", func(name string) error {
		opts.taps = append(opts.taps, name)
		return nil
	})

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", opts, fmt.Errorf("demo name is required\n\nUsage: loom capture <demo>")
	}
	name := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return "", opts, err
	}
	if opts.output == "" {
		opts.output = name + ".png"
	}
	return name, opts, nil
}

func runCapture(args []string) error {
	name, opts, err := parseCaptureArgs(args)
	if err != nil {
		return err
	}
	d, ok := demo.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown demo %q (see \"loom demos\")", name)
	}
	cfg, err := engine.LoadConfig(opts.dir)
	if err != nil {
		return err
	}

	w := int(math.Ceil(cfg.Size.Width * cfg.Scale))
	h := int(math.Ceil(cfg.Size.Height * cfg.Scale))
	raster, err := rendering.NewRaster(w, h, cfg.Scale)
	if err != nil {
		return err
	}
	app, err := engine.New(cfg, headless{}, raster, d.View())
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	if err := app.Step(ctx); err != nil {
		return err
	}
	for _, tap := range opts.taps {
		if err := tapByName(app, tap); err != nil {
			return err
		}
	}
	img, err := app.Capture(ctx)
	if err != nil {
		return err
	}

	out := stdout
	if opts.output == "-" && isTerminal(out) {
		return fmt.Errorf("refusing to write PNG data to a terminal; use -o FILE or redirect stdout")
	}
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", opts.output, err)
	}
	if opts.output != "-" {
		fmt.Fprintf(stdout, "wrote %s (%dx%d)\n", opts.output, w, h)
	}
	return nil
}

// tapByName taps the center of the first accessibility node named name.
func tapByName(app *engine.Application, name string) error {
	for _, e := range app.Context().AccessNodes() {
		if e.Node.Name != name {
			continue
		}
		pos := e.Node.Bounds.Center()
		if err := app.Dispatch(core.TouchBegin{Position: pos}); err != nil {
			return err
		}
		return app.Dispatch(core.TouchEnd{Position: pos})
	}
	return fmt.Errorf("no node named %q", name)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// headless is a Platform without a window. It reports a close request as
// soon as it is polled.
type headless struct{}

func (headless) Poll(ctx context.Context) (engine.PlatformEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return engine.CloseRequested{}, nil
}

func (headless) SetTitle(string) {}
func (headless) RequestRedraw()  {}
