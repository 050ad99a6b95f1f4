package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/sfriedel/go-sphere-tracer/log"
	"github.com/sfriedel/go-sphere-tracer/pkg/renderer"
	"github.com/sfriedel/go-sphere-tracer/pkg/scene"
)

const (
	defaultWidth  = 400
	defaultHeight = 225
	outputFile    = "output.ppm"
)

var logger = log.New("sphere-tracer")

func main() {
	app := cli.NewApp()
	app.Name = "go-sphere-tracer"
	app.Usage = "render the sphere showcase scene with path tracing"
	app.ArgsUsage = "[width height]"
	app.HideVersion = true
	app.Action = render

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("render failed: %v", err)
		os.Exit(1)
	}
}

// render builds the showcase scene, traces it, and writes output.ppm
func render(ctx *cli.Context) error {
	width, height := parseSize(ctx.Args())

	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	sc := scene.NewCoverScene(random)
	logger.Noticef("scene built: %d spheres", len(sc.Spheres))

	config := renderer.DefaultSamplingConfig()
	logger.Noticef("rendering %dx%d at %d samples/pixel, depth %d, %d workers",
		width, height, config.SamplesPerPixel, config.MaxDepth, config.NumWorkers)

	rt := renderer.NewRaytracer(sc, width, height)
	rt.SetSamplingConfig(config)
	framebuffer, stats := rt.RenderPass()

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputFile, err)
	}
	defer file.Close()

	if err := renderer.WritePPM(file, framebuffer, width, height); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", outputFile)
	return nil
}

// parseSize reads the optional positional "width height" arguments. Absent
// or malformed arguments fall back to the 400x225 default rather than failing.
func parseSize(args []string) (int, int) {
	if len(args) < 2 {
		return defaultWidth, defaultHeight
	}

	width, errW := strconv.Atoi(args[0])
	height, errH := strconv.Atoi(args[1])
	if errW != nil || errH != nil {
		logger.Debugf("ignoring malformed size arguments %q %q", args[0], args[1])
		return defaultWidth, defaultHeight
	}

	return width, height
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Pixels", "Rays", "Rows", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Rows),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%s", stats.Elapsed),
	})
	table.Render()

	logger.Noticef("render statistics\n%s", buf.String())
}
