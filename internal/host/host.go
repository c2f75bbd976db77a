// Package host contains the code shared by the display backends: window
// settings, key repeat timing, and the headless runner. The windowed and
// terminal backends live in subpackages so this one builds without cgo.
package host

import (
	"errors"

	"cubeview/internal/engine"
	"cubeview/internal/raster"
)

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "cubeview"

// WindowConfig is the initial window setup for windowed backends.
type WindowConfig struct {
	Width, Height int
	Title         string
}

// TitleOrDefault returns the configured title, or DefaultTitle.
func (c WindowConfig) TitleOrDefault() string {
	if c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}

// Reportable reports whether a Frame error is worth logging. Missing surfaces
// are expected while a window is minimized.
func Reportable(err error) bool {
	return err != nil && !errors.Is(err, engine.ErrNoSurface) && !errors.Is(err, raster.ErrNoCanvas)
}
