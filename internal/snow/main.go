package snow

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens a window and drives the snowfall until Escape or close.
// M toggles the wind ambience.
func RunDesktop() {
	runtime.LockOSThread()

	attrs, err := LoadAttrs("snowfall.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "attrs: %v (using defaults)\n", err)
		attrs = DefaultAttrs()
	}

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	seed := attrs.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if !attrs.Mute {
		if err := InitAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			StartWind(seed)
			defer StopAudio()
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.03, 0.05, 0.10, 1.0) // night sky

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// Content scale maps the logical-unit constants to device pixels.
	scaleX, _ := window.GetContentScale()
	scene := NewScene(attrs, float64(scaleX), seed)
	input := NewInput()

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyM) {
			ToggleMute()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		rend.BeginFrame(fbW, fbH)
		scene.Frame(rend, glfw.GetTime()*1000)
		rend.EndFrame()

		window.SwapBuffers()
	}
}
