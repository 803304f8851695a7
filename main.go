package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/wall"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (soak mode)")
	maxFrames := flag.Int("frames", 0, "Stop after N frames (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	reducedMotion := flag.Bool("reduced-motion", false, "Start with motion disabled")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := wall.Options{
		LogStats:      *logStats,
		OutputDir:     *outputDir,
		ReducedMotion: *reducedMotion,
		Headless:      *headless,
	}

	if *headless {
		// Headless mode: pure CPU frames, no raylib needed
		w, err := wall.New(opts)
		if err != nil {
			slog.Error("failed to create wall", "error", err)
			os.Exit(1)
		}
		defer w.Close()

		slog.Info("starting headless run",
			"max_frames", *maxFrames,
			"stats_window", cfg.Telemetry.StatsWindow,
			"output_dir", *outputDir,
		)

		for {
			w.UpdateHeadless()

			if *maxFrames > 0 && int(w.Frame()) >= *maxFrames {
				slog.Info("max frames reached", "frame", w.Frame())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Drift")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	w, err := wall.New(opts)
	if err != nil {
		slog.Error("failed to create wall", "error", err)
		os.Exit(1)
	}
	defer w.Close()

	for !rl.WindowShouldClose() {
		w.Update()
		w.Draw()

		if *maxFrames > 0 && int(w.Frame()) >= *maxFrames {
			break
		}
	}
}
