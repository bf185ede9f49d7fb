package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/output"
	"github.com/WillDeJs/ray-tracing/pkg/renderer"
	"github.com/WillDeJs/ray-tracing/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scene     string
	ScenesDir string
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Passes    int
	Workers   int
	Seed      int64
	Format    string
	Out       string
	Help      bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		config.Help = true
	} else if err != nil {
		os.Exit(2)
	}

	if config.Help {
		showHelp(os.Stdout, config.ScenesDir)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses the command line into a Config
func parseFlags(args []string, errOutput io.Writer) (Config, error) {
	var config Config
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(errOutput)

	defineFlags(flags, &config)

	if err := flags.Parse(args); err != nil {
		return config, err
	}

	if config.ScenesDir == "" {
		config.ScenesDir = scene.FindScenesDir()
	}
	if err := config.resolveOutput(time.Now()); err != nil {
		fmt.Fprintln(errOutput, err)
		return config, err
	}
	for _, option := range []struct {
		name  string
		value int
	}{
		{"width", config.Width}, {"height", config.Height}, {"samples", config.Samples},
		{"depth", config.MaxDepth}, {"workers", config.Workers},
	} {
		if option.value < 0 {
			err := fmt.Errorf("-%s must not be negative, got %d", option.name, option.value)
			fmt.Fprintln(errOutput, err)
			return config, err
		}
	}
	return config, nil
}

// defineFlags registers every command line flag on flags
func defineFlags(flags *flag.FlagSet, config *Config) {
	flags.StringVar(&config.Scene, "scene", "default", "Scene: built-in name, file:<name>, or path to a .yaml scene")
	flags.StringVar(&config.ScenesDir, "scenes", "", "Directory of YAML scene files (default: ./scenes or ../scenes)")
	flags.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = keep the scene's aspect ratio)")
	flags.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flags.IntVar(&config.MaxDepth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	flags.IntVar(&config.Passes, "passes", 1, "Number of progressive passes")
	flags.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flags.Int64Var(&config.Seed, "seed", 42, "Seed for random scenes and sampling")
	flags.StringVar(&config.Format, "format", "", "Output format: ppm or png (default: from -out, else ppm)")
	flags.StringVar(&config.Out, "out", "", "Output file (default: output/<scene>/render_<timestamp>.<format>)")
	flags.BoolVar(&config.Help, "help", false, "Show help information")
}

// resolveOutput fills in the output format and path
func (c *Config) resolveOutput(now time.Time) error {
	if c.Format == "" && c.Out != "" {
		format, err := output.FormatFromPath(c.Out)
		if err != nil {
			return err
		}
		c.Format = format
	}
	if c.Format == "" {
		c.Format = output.FormatPPM
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != output.FormatPPM && c.Format != output.FormatPNG {
		return fmt.Errorf("%w: %q", output.ErrUnknownFormat, c.Format)
	}

	if c.Out == "" {
		timestamp := now.Format("20060102_150405")
		c.Out = filepath.Join("output", sceneDirName(c.Scene), fmt.Sprintf("render_%s.%s", timestamp, c.Format))
	}
	return nil
}

// sceneDirName turns a scene name or path into a directory name
func sceneDirName(sceneName string) string {
	name := strings.TrimPrefix(sceneName, "file:")
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if name == "" || name == "." {
		return "scene"
	}
	return name
}

// createScene builds the selected scene and applies the size and sampling flags
func createScene(config Config) (*scene.Scene, error) {
	var selectedScene *scene.Scene
	var err error
	if ext := strings.ToLower(filepath.Ext(config.Scene)); ext == ".yaml" || ext == ".yml" {
		// A path on the command line is trusted wherever it lives
		selectedScene, err = scene.NewFileScene(filepath.Dir(config.Scene), config.Scene)
	} else {
		selectedScene, err = scene.Create(config.Scene, config.ScenesDir, config.Seed)
	}
	if err != nil {
		return nil, err
	}

	if err := selectedScene.ApplySampling(core.SamplingConfig{
		Width:           config.Width,
		Height:          config.Height,
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	}); err != nil {
		return nil, err
	}
	return selectedScene, nil
}

// run renders the configured scene and writes it to disk
func run(ctx context.Context, config Config) error {
	fmt.Println("Starting Ray Tracer...")

	selectedScene, err := createScene(config)
	if err != nil {
		return err
	}

	sampling := selectedScene.GetSamplingConfig()
	fmt.Printf("Rendering %s: %dx%d, %d samples/pixel, %d spheres\n",
		config.Scene, sampling.Width, sampling.Height, sampling.SamplesPerPixel, selectedScene.GetPrimitiveCount())

	progressiveConfig := renderer.DefaultProgressiveConfig()
	progressiveConfig.MaxPasses = config.Passes
	progressiveConfig.NumWorkers = config.Workers
	progressiveConfig.Seed = config.Seed

	raytracer, err := renderer.NewProgressiveRaytracer(selectedScene, progressiveConfig, selectedScene.NewIntegrator(), renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	startTime := time.Now()
	frame, stats, err := raytracer.Render(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("render interrupted: %w", err)
		}
		return err
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)

	if err := output.WriteFile(config.Out, config.Format, frame); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", config.Out)
	return nil
}

// showHelp prints usage and the scenes that can be rendered
func showHelp(w io.Writer, scenesDir string) {
	fmt.Fprintln(w, "Ray Tracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(w)
	defineFlags(flags, &Config{})
	flags.PrintDefaults()
	fmt.Fprintln(w)

	response, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		fmt.Fprintf(w, "Could not list scenes: %v\n", err)
		return
	}
	fmt.Fprintln(w, "Available scenes:")
	for _, group := range response.Groups {
		fmt.Fprintf(w, "  %s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "    %-24s %s\n", info.ID, info.Description)
		}
	}
}
