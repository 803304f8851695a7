// Wall export tool - renders engine frames offscreen and writes an
// animated PNG. No window needed; useful for sharing parameter sets.
//
// Usage: go run ./cmd/wallexport -frames 90 -out wall.png
package main

import (
	"flag"
	"image"
	"log/slog"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/setanarut/apng"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/field"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "wall.png", "Output animated PNG path")
	width := flag.Int("width", 640, "Surface width in pixels (0 = config screen width)")
	height := flag.Int("height", 360, "Surface height in pixels (0 = config screen height)")
	frames := flag.Int("frames", 90, "Number of frames to capture")
	delay := flag.Int("delay", 4, "Per-frame delay in 1/100s (4 = 25 fps)")
	warmup := flag.Int("warmup", 60, "Frames to run before capture so activation settles")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *width <= 0 {
		*width = cfg.Screen.Width
	}
	if *height <= 0 {
		*height = cfg.Screen.Height
	}
	if *delay < 1 {
		*delay = 1
	}

	pal, err := field.ParsePalette(
		cfg.Palette.Background, cfg.Palette.Base, cfg.Palette.AccentA, cfg.Palette.AccentB)
	if err != nil {
		slog.Warn("invalid palette, falling back to built-in colors", "error", err)
		pal = field.DefaultPalette()
	}

	eng := field.New(pal)
	p := cfg.EngineParams()
	eng.Rebuild(float64(*width), float64(*height), p)

	g := eng.Grid()
	slog.Info("rendering",
		"cols", g.Cols,
		"rows", g.Rows,
		"frames", *frames,
		"warmup", *warmup,
		"size", [2]int{*width, *height},
	)

	// Playback and capture share the same time step.
	dt := float64(*delay) / 100

	simTime := 0.0
	for i := 0; i < *warmup; i++ {
		eng.Frame(simTime, cfg.Animation.Motion, p)
		simTime += dt
	}

	images := make([]image.Image, 0, *frames)
	for i := 0; i < *frames; i++ {
		cells := eng.Frame(simTime, cfg.Animation.Motion, p)
		simTime += dt
		images = append(images, renderFrame(*width, *height, pal.Background, cells))
	}

	if err := apng.Save(*outPath, images, uint16(*delay)); err != nil {
		slog.Error("failed to write animated png", "error", err)
		os.Exit(1)
	}

	slog.Info("export complete", "path", *outPath, "frames", *frames)
}

// renderFrame rasterizes one frame of cells over the background color.
func renderFrame(width, height int, bg field.RGB, cells []field.Cell) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
	dc.Clear()

	for i := range cells {
		c := &cells[i]
		dc.SetRGBA255(int(c.Color.R), int(c.Color.G), int(c.Color.B),
			int(math.Round(float64(c.Alpha)*255)))
		dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.Size), float64(c.Size))
		dc.Fill()
	}

	return dc.Image()
}
