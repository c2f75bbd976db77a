package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"cubeview/internal/engine"
	"cubeview/internal/geom"
	"cubeview/internal/host"
	"cubeview/internal/host/ebitenwindow"
	"cubeview/internal/host/glwindow"
	"cubeview/internal/host/terminal"
)

func main() {
	cfg := engine.DefaultConfig()
	backend := flag.String("backend", "glfw", "Display backend: glfw, ebiten, term or headless.")
	width := flag.Int("width", 1280, "Initial window width in pixels.")
	height := flag.Int("height", 720, "Initial window height in pixels.")
	fill := flag.String("fill", cfg.Fill.String(), "Cube sampling: shell or volume.")
	nudge := flag.String("nudge", cfg.Nudge.String(), "What rotation keys change: angle or velocity.")
	spin := flag.String("spin", "0,0,0", "Initial angular velocity per frame as x,y,z radians.")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "Grid points per cube axis.")
	flag.BoolVar(&cfg.Rotate, "rotate", cfg.Rotate, "Apply the accumulated rotation when drawing.")
	flag.Float64Var(&cfg.Focal, "focal", cfg.Focal, "Focal distance in world units.")
	flag.Float64Var(&cfg.AngleStep, "angle-step", cfg.AngleStep, "Rotation key increment in radians.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Log ignored keys and frame errors.")
	frames := flag.Int("frames", 1, "Frames to render in headless mode.")
	hz := flag.Int("hz", 0, "Frame rate in headless and term modes (0 = headless as fast as possible, term 30).")
	keys := flag.String("keys", "", "Comma separated keys replayed before rendering in headless mode.")
	out := flag.String("out", "", "PNG file for the last headless frame.")
	flag.Parse()

	logger := log.New(os.Stderr, "cubeview: ", log.LstdFlags)

	var err error
	if cfg.Fill, err = geom.ParseFill(*fill); err != nil {
		fatal(err)
	}
	if cfg.Nudge, err = engine.ParseNudge(*nudge); err != nil {
		fatal(err)
	}
	if cfg.Spin, err = parseVec3(*spin); err != nil {
		fatal(fmt.Errorf("-spin: %w", err))
	}

	e, err := engine.New(cfg, logger)
	if err != nil {
		fatal(err)
	}

	win := host.WindowConfig{Width: *width, Height: *height}
	switch *backend {
	case "glfw":
		err = glwindow.Run(e, win, logger)
	case "ebiten":
		err = ebitenwindow.Run(e, win, logger)
	case "term":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		// the terminal is the display; keep log lines off it
		logger.SetOutput(io.Discard)
		err = terminal.Run(ctx, e, terminal.Config{Hz: *hz, Status: true}, logger)
	case "headless":
		err = runHeadless(e, *width, *height, *frames, *hz, *keys, *out, logger)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func runHeadless(e *engine.Engine, w, h, frames, hz int, keys, out string, logger *log.Logger) error {
	ks, err := host.ParseKeys(keys)
	if err != nil {
		return fmt.Errorf("-keys: %w", err)
	}
	cfg := host.HeadlessConfig{Width: w, Height: h, Frames: frames, Hz: hz, Keys: ks}
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		cfg.Out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return host.RunHeadless(ctx, e, cfg, logger)
}

func parseVec3(s string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
