// Package glwindow presents frames in a glfw window through OpenGL. The point
// cloud is rasterized on the CPU and uploaded as a texture every frame.
package glwindow

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubeview/internal/engine"
	"cubeview/internal/host"
	"cubeview/internal/raster"
)

var keys = map[glfw.Key]engine.Key{
	glfw.KeyW:     engine.KeyW,
	glfw.KeyS:     engine.KeyS,
	glfw.KeyQ:     engine.KeyQ,
	glfw.KeyE:     engine.KeyE,
	glfw.KeyA:     engine.KeyA,
	glfw.KeyD:     engine.KeyD,
	glfw.KeyZ:     engine.KeyZ,
	glfw.KeyC:     engine.KeyC,
	glfw.KeyR:     engine.KeyR,
	glfw.KeySpace: engine.KeySpace,
	glfw.KeyUp:    engine.KeyArrowUp,
	glfw.KeyDown:  engine.KeyArrowDown,
	glfw.KeyLeft:  engine.KeyArrowLeft,
	glfw.KeyRight: engine.KeyArrowRight,
}

// Run opens the window and renders until it is closed or Escape is pressed.
// It must be called from the main goroutine.
func Run(e *engine.Engine, cfg host.WindowConfig, logger *log.Logger) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	title := cfg.TitleOrDefault()
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	logger.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	bg := e.Config().Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1.0)

	canvas := raster.NewCanvas(0, 0, bg)
	resize := func(w, h int) {
		canvas.Resize(w, h)
		e.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
	}
	resize(window.GetFramebufferSize())
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		resize(w, h)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		k, ok := keys[key]
		if !ok {
			k = engine.Key(glfw.GetKeyName(key, scancode))
		}
		e.HandleKey(k)
	})

	texW, texH := 0, 0
	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !window.ShouldClose() {
		// FPS Counter Update (every 1 second)
		currentTime := glfw.GetTime()
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := e.Frame(canvas); err != nil {
			if host.Reportable(err) {
				logger.Printf("frame: %v", err)
			}
		} else {
			img := canvas.Image()
			w, h := canvas.Size()
			if w != texW || h != texH {
				gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
				texW, texH = w, h
			} else {
				gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
			}
		}

		if texW > 0 && texH > 0 {
			gl.BindVertexArray(vao)
			gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
