package host

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"time"

	"cubeview/internal/engine"
	"cubeview/internal/raster"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Width, Height int
	Frames        int          // frames to render; at least one
	Hz            int          // frame rate; 0 renders as fast as possible
	Keys          []engine.Key // replayed in order before the first frame
	Out           io.Writer    // receives the last frame as PNG; may be nil
}

// RunHeadless renders into an off-screen canvas and optionally writes the
// final frame as a PNG.
func RunHeadless(ctx context.Context, e *engine.Engine, cfg HeadlessConfig, logger *log.Logger) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Frames <= 0 {
		cfg.Frames = 1
	}
	if cfg.Hz < 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	canvas := raster.NewCanvas(cfg.Width, cfg.Height, e.Config().Background)
	e.Resize(cfg.Width, cfg.Height)
	for _, k := range cfg.Keys {
		e.HandleKey(k)
	}

	var tick <-chan time.Time
	if cfg.Hz > 0 {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		tick = t.C
	}

	for n := 0; n < cfg.Frames; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Frame(canvas); err != nil {
			if errors.Is(err, engine.ErrNoSurface) {
				return err
			}
			logger.Printf("frame %d: %v", n, err)
		}
	}

	if cfg.Out == nil {
		return nil
	}
	if err := png.Encode(cfg.Out, canvas.Image()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}
