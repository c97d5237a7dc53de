// Package trace runs a session headless and records its timeline.
package trace

import (
	"context"
	"fmt"
	"log/slog"

	"econflow/internal/logs"
	"econflow/internal/sim"
)

type Options struct {
	Seed uint64
	// AdvanceDelay is how many frames the scripted viewer lingers in each
	// user-driven stage before pressing advance.
	AdvanceDelay int
	// MaxFrames bounds the run.
	MaxFrames int
	// Attacks keeps the per-hit attack events in the timeline.
	Attacks bool
}

func DefaultOptions() Options {
	return Options{
		Seed:         1983,
		AdvanceDelay: 2 * sim.FPS,
		MaxFrames:    60 * sim.FPS,
	}
}

type Entry struct {
	Frame int    `yaml:"frame"`
	Event string `yaml:"event"`
	From  string `yaml:"from,omitempty"`
	Stage string `yaml:"stage"`
	Data  int    `yaml:"data,omitempty"`
}

type Span struct {
	Stage  string `yaml:"stage"`
	Title  string `yaml:"title"`
	Enter  int    `yaml:"enter"`
	Frames int    `yaml:"frames"`
}

type Timeline struct {
	RunID     string  `yaml:"run_id"`
	Seed      uint64  `yaml:"seed"`
	Frames    int     `yaml:"frames"`
	Final     string  `yaml:"final_stage"`
	Completed bool    `yaml:"completed"`
	Stages    []Span  `yaml:"stages"`
	Events    []Entry `yaml:"events"`
}

// Record plays the narrative with a scripted viewer that advances whenever
// allowed, until EndState or MaxFrames. The context is checked every frame.
func Record(ctx context.Context, opts Options, logger *slog.Logger) (*Timeline, error) {
	if opts.MaxFrames <= 0 {
		return nil, fmt.Errorf("max frames must be positive, got %d", opts.MaxFrames)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := logs.NewRunID()
	ctx = logs.WithRun(ctx, id)

	bus := sim.NewEventBus()
	s := sim.NewSimulation(opts.Seed, bus)
	logs.AttachBus(ctx, bus, logger)

	tl := &Timeline{
		RunID:  string(id),
		Seed:   opts.Seed,
		Stages: []Span{{Stage: s.Stage().String(), Title: s.Stage().Title()}},
	}
	bus.SubscribeAll(func(e sim.Event) {
		switch e.Type {
		case sim.EventRichAttack, sim.EventMachineAttack:
			if !opts.Attacks {
				return
			}
		case sim.EventStageAdvanced, sim.EventPhaseComplete, sim.EventReset:
			last := &tl.Stages[len(tl.Stages)-1]
			last.Frames = e.Frame - last.Enter
			tl.Stages = append(tl.Stages, Span{Stage: e.Stage.String(), Title: e.Stage.Title(), Enter: e.Frame})
		}
		entry := Entry{Frame: e.Frame, Event: e.Type.String(), Stage: e.Stage.String(), Data: e.Data}
		if e.Type == sim.EventStageAdvanced || e.Type == sim.EventPhaseComplete {
			entry.From = e.From.String()
		}
		tl.Events = append(tl.Events, entry)
	})

	entered := 0
	for s.Frame < opts.MaxFrames && s.Stage() != sim.EndState {
		if err := ctx.Err(); err != nil {
			return tl, fmt.Errorf("trace interrupted at frame %d: %w", s.Frame, err)
		}
		if s.Frame-entered >= opts.AdvanceDelay && s.RequestAdvance() {
			entered = s.Frame
			continue
		}
		stage := s.Stage()
		s.Step()
		if s.Stage() != stage {
			entered = s.Frame
		}
	}

	tl.Frames = s.Frame
	tl.Final = s.Stage().String()
	tl.Completed = s.Stage() == sim.EndState
	last := &tl.Stages[len(tl.Stages)-1]
	last.Frames = s.Frame - last.Enter

	logger.InfoContext(ctx, "trace finished", "frames", tl.Frames, "final", tl.Final, "completed", tl.Completed)
	return tl, nil
}
