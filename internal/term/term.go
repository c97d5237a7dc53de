package term

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"econflow/internal/logs"
	"econflow/internal/sim"
)

type Options struct {
	Seed   uint64
	Mute   bool
	Logger *slog.Logger
}

// Term is one terminal session: the simulation plus its raster.
type Term struct {
	screen tcell.Screen
	sim    *sim.Simulation
	scene  sim.Scene
	raster *Raster
	mute   bool
	logger *slog.Logger
	ctx    context.Context
}

func New(ctx context.Context, screen tcell.Screen, opts Options) *Term {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	bus := sim.NewEventBus()
	cols, rows := screen.Size()
	t := &Term{
		screen: screen,
		sim:    sim.NewSimulation(opts.Seed, bus),
		raster: NewRaster(cols, rows),
		mute:   opts.Mute,
		logger: logger,
		ctx:    ctx,
	}
	logs.AttachBus(ctx, bus, logger)
	bell := func(sim.Event) {
		if !t.mute {
			_ = screen.Beep()
		}
	}
	bus.Subscribe(sim.EventRichFallen, bell)
	bus.Subscribe(sim.EventGovtFallen, bell)
	return t
}

// Sim exposes the running simulation.
func (t *Term) Sim() *sim.Simulation { return t.sim }

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (t *Term) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				if !t.sim.RequestAdvance() {
					t.logger.DebugContext(t.ctx, "advance ignored", "stage", t.sim.Stage())
				}
			case 'r', 'R':
				t.sim.Reset()
			case 'q':
				return false
			}
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.raster.Resize(cols, rows)
		t.screen.Sync()
	}
	return true
}

// Draw renders the current frame to the screen buffer.
func (t *Term) Draw() {
	t.scene.Build(t.sim)
	t.raster.Draw(&t.scene)
	t.raster.Blit(t.screen)
	t.screen.Show()
}

// Run drives the simulation at a fixed 60 Hz until quit or ctx is done.
func (t *Term) Run() error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / sim.FPS)
	defer ticker.Stop()

	t.logger.InfoContext(t.ctx, "session started", "stage", t.sim.Stage())
	for {
		select {
		case <-t.ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !t.HandleEvent(ev) {
				t.logger.InfoContext(t.ctx, "session ended", "frames", t.sim.Frame, "stage", t.sim.Stage())
				return nil
			}
		case <-ticker.C:
			t.sim.Step()
			t.Draw()
		}
	}
}

// RunTerminal opens the terminal, runs a session and restores the terminal.
func RunTerminal(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return New(ctx, screen, opts).Run()
}
