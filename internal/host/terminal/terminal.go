// Package terminal renders the point cloud into a terminal with tcell. Each
// character cell is two pixels tall, so the display resolution is the number
// of columns by twice the number of rows.
package terminal

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"cubeview/internal/engine"
	"cubeview/internal/host"
)

var runeKeys = map[rune]engine.Key{
	'w': engine.KeyW,
	's': engine.KeyS,
	'q': engine.KeyQ,
	'e': engine.KeyE,
	'a': engine.KeyA,
	'd': engine.KeyD,
	'z': engine.KeyZ,
	'c': engine.KeyC,
	'r': engine.KeyR,
	' ': engine.KeySpace,
}

var specialKeys = map[tcell.Key]engine.Key{
	tcell.KeyUp:    engine.KeyArrowUp,
	tcell.KeyDown:  engine.KeyArrowDown,
	tcell.KeyLeft:  engine.KeyArrowLeft,
	tcell.KeyRight: engine.KeyArrowRight,
}

// Config controls the terminal runner.
type Config struct {
	Hz     int  // frame rate
	Status bool // draw the camera and angle readout on the last row
}

// Surface draws strokes as cells of a tcell screen.
type Surface struct {
	s    tcell.Screen
	Rune rune
}

// NewSurface wraps s.
func NewSurface(s tcell.Screen) *Surface {
	return &Surface{s: s, Rune: '•'}
}

// Resolution returns the pixel size of the screen.
func (t *Surface) Resolution() (w, h int) {
	cols, rows := t.s.Size()
	return cols, rows * 2
}

func (t *Surface) Clear() error {
	t.s.Clear()
	return nil
}

// StrokeSegment marks the cell under the start of the segment. Cells outside
// the screen and non-finite coordinates are ignored.
func (t *Surface) StrokeSegment(x0, y0, _, _ float64, c color.RGBA, _ float64) error {
	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsInf(x0, 0) || math.IsInf(y0, 0) {
		return nil
	}
	cols, rows := t.s.Size()
	cx, cy := math.Floor(x0), math.Floor(y0/2)
	if cx < 0 || cy < 0 || cx >= float64(cols) || cy >= float64(rows) {
		return nil
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	t.s.SetContent(int(cx), int(cy), t.Rune, nil, style)
	return nil
}

// Run takes over the terminal until Escape or Ctrl-C is pressed or ctx ends.
func Run(ctx context.Context, e *engine.Engine, cfg Config, logger *log.Logger) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	surface := NewSurface(s)
	e.Resize(surface.Resolution())

	quit := make(chan struct{})

	// Input handler
	go func() {
		defer close(quit)
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyRune:
					if k, ok := runeKeys[ev.Rune()]; ok {
						e.HandleKey(k)
					} else {
						e.HandleKey(engine.Key(string(ev.Rune())))
					}
				default:
					if k, ok := specialKeys[ev.Key()]; ok {
						e.HandleKey(k)
					}
				}
			case *tcell.EventResize:
				s.Sync()
				e.Resize(surface.Resolution())
			}
		}
	}()

	// Render loop
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-ticker.C:
			if err := e.Frame(surface); err != nil {
				if host.Reportable(err) {
					logger.Printf("frame: %v", err)
				}
				continue
			}
			if cfg.Status {
				drawStatus(s, e)
			}
			s.Show()
		}
	}
}

func drawStatus(s tcell.Screen, e *engine.Engine) {
	_, h := s.Size()
	cam, o := e.Camera(), e.Orientation()
	info := fmt.Sprintf("camera %.0f,%.0f,%.0f | angle %.2f,%.2f,%.2f | arrows/W/S move, Z/C A/D Q/E turn, R reset, Esc quit",
		cam.X, cam.Y, cam.Z, o.Angle[0], o.Angle[1], o.Angle[2])
	drawText(s, 0, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
