package game

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"econflow/internal/logs"
	"econflow/internal/sim"
	"econflow/internal/synth"
)

type Options struct {
	Seed   uint64
	Mute   bool
	Logger *slog.Logger
}

// RunDesktop opens the window and runs the narrative until the window is
// closed, Escape is pressed or ctx is cancelled. SPACE advances, R resets.
func RunDesktop(ctx context.Context, opts Options) error {
	runtime.LockOSThread()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if opts.Mute {
		SetSFXVolume(0)
	} else if err := InitAudio(); err != nil {
		logger.WarnContext(ctx, "audio init failed, continuing without sound", "error", err)
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	bus := sim.NewEventBus()
	s := sim.NewSimulation(opts.Seed, bus)
	logs.AttachBus(ctx, bus, logger)

	var cam Camera
	wireEffects(bus, &cam)
	input := NewInput()
	var scene sim.Scene

	logger.InfoContext(ctx, "session started", "seed", opts.Seed, "stage", s.Stage())

	last := glfw.GetTime()
	acc := 0.0
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		now := glfw.GetTime()
		dt := min(now-last, MaxFrameDelta)
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if input.JustPressed(window, glfw.KeySpace) && !s.RequestAdvance() {
			logger.DebugContext(ctx, "advance ignored", "stage", s.Stage())
			PlaySound(synth.CueRefused)
		}
		if input.JustPressed(window, glfw.KeyR) {
			s.Reset()
		}

		acc += dt
		for acc >= FrameTime {
			s.Step()
			acc -= FrameTime
		}

		cam.Fit(fbW, fbH)
		cam.UpdateShake(dt, uint64(s.Frame))

		scene.Build(s)
		rend.BeginFrame(fbW, fbH)
		DrawScene(rend, &scene, cam.Shaken(), fbW, fbH)
		window.SwapBuffers()
	}

	logger.InfoContext(ctx, "session ended", "frames", s.Frame, "stage", s.Stage())
	return nil
}
