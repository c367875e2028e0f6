package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/imageio"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/renderer"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

// cliConfig holds the parsed command line options
type cliConfig struct {
	Scale     int
	Workers   int
	Output    bool
	OutFile   string
	Format    string
	SceneName string
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(config, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses and validates command line arguments
func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	config := cliConfig{}
	fs.IntVar(&config.Scale, "s", 1, "Render scale multiplier applied to the 800x600 base resolution and the scene")
	fs.IntVar(&config.Workers, "t", 1, "Number of parallel workers")
	fs.BoolVar(&config.Output, "o", false, "Write the rendered image to a file")
	fs.StringVar(&config.OutFile, "out", "image.ppm", "Output file used with -o")
	fs.StringVar(&config.Format, "format", imageio.FormatPPM, "Output format: 'ppm' or 'png'")
	fs.StringVar(&config.SceneName, "scene", "reference", "Scene type: 'reference' or 'single-sphere'")

	fs.Usage = func() {
		fmt.Fprintln(output, "Sphere Raytracer")
		fmt.Fprintln(output, "Usage: raytracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(output, "  %s - %s\n", info.ID, info.Description)
		}
	}

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fs.NArg() > 0 {
		return cliConfig{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if config.Scale <= 0 {
		return cliConfig{}, fmt.Errorf("scale must be positive, got %d", config.Scale)
	}
	if config.Workers <= 0 {
		return cliConfig{}, fmt.Errorf("worker count must be positive, got %d", config.Workers)
	}
	if !imageio.SupportedFormat(config.Format) {
		return cliConfig{}, fmt.Errorf("unsupported format %q", config.Format)
	}

	return config, nil
}

// run renders the selected scene and optionally saves it
func run(config cliConfig, logger core.Logger) error {
	if config.Output {
		logger.Printf("scale %d, threads %d, output file %s created\n", config.Scale, config.Workers, config.OutFile)
	} else {
		logger.Printf("scale %d, threads %d, no output file created\n", config.Scale, config.Workers)
	}

	selectedScene, err := scene.NewSceneByName(config.SceneName, float64(config.Scale))
	if err != nil {
		return err
	}

	width := scene.BaseWidth * config.Scale
	height := scene.BaseHeight * config.Scale

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = config.Workers
	raytracer := renderer.NewRaytracer(selectedScene, width, height, renderConfig, logger)

	startTime := time.Now()
	fb, stats, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	renderTime := time.Since(startTime)

	logger.Printf("Execution Time: %d ms\n", renderTime.Milliseconds())
	logger.Printf("Bounces per pixel: %.2f (max %d), %d of %d pixels missed all spheres\n",
		stats.AverageBounces, stats.MaxBouncesUsed, stats.MissedPixels, stats.TotalPixels)
	logger.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(fb))

	if !config.Output {
		return nil
	}

	if err := imageio.SaveFramebuffer(config.OutFile, config.Format, fb); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", config.OutFile)
	return nil
}
