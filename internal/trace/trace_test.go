package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"econflow/internal/sim"
)

func TestRecordCompletes(t *testing.T) {
	tl, err := Record(context.Background(), DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !tl.Completed || tl.Final != "end_state" {
		t.Fatalf("expected completed run, got %s after %d frames", tl.Final, tl.Frames)
	}
	if len(tl.Stages) != len(sim.Stages) {
		t.Fatalf("expected %d spans, got %d", len(sim.Stages), len(tl.Stages))
	}
	for i, sp := range tl.Stages {
		if sp.Stage != sim.Stages[i].String() {
			t.Fatalf("span %d: expected %s, got %s", i, sim.Stages[i], sp.Stage)
		}
	}
	if tl.Stages[0].Frames != DefaultOptions().AdvanceDelay {
		t.Fatalf("expected the viewer to linger %d frames, got %d", DefaultOptions().AdvanceDelay, tl.Stages[0].Frames)
	}
	if tl.RunID == "" {
		t.Fatal("expected a run id")
	}
}

func TestRecordSkipsAttacksByDefault(t *testing.T) {
	tl, err := Record(context.Background(), DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	falls := 0
	for _, e := range tl.Events {
		switch e.Event {
		case "rich_attack", "machine_attack":
			t.Fatalf("unexpected attack event %+v", e)
		case "rich_fallen", "govt_fallen":
			falls++
		}
	}
	if falls != 2 {
		t.Fatalf("expected 2 latches, got %d", falls)
	}

	opts := DefaultOptions()
	opts.Attacks = true
	tl, err = Record(context.Background(), opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	attacks := 0
	for _, e := range tl.Events {
		if e.Event == "rich_attack" || e.Event == "machine_attack" {
			attacks++
		}
	}
	if attacks != 2*sim.AttacksNeeded {
		t.Fatalf("expected %d attacks, got %d", 2*sim.AttacksNeeded, attacks)
	}
}

func TestRecordFrameLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxFrames = 300
	tl, err := Record(context.Background(), opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if tl.Completed || tl.Frames != 300 {
		t.Fatalf("expected incomplete run of 300 frames, got %+v", tl)
	}

	opts.MaxFrames = 0
	if _, err := Record(context.Background(), opts, nil); err == nil {
		t.Fatal("expected error for zero frame limit")
	}
}

func TestRecordCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Record(ctx, DefaultOptions(), nil); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestWriteYAML(t *testing.T) {
	tl, err := Record(context.Background(), DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if err := WriteYAML(buf, tl); err != nil {
		t.Fatal(err)
	}
	var back Timeline
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.RunID != tl.RunID || len(back.Stages) != len(tl.Stages) || back.Final != tl.Final {
		t.Fatalf("got %+v", back)
	}
}

func TestWriteTextPlain(t *testing.T) {
	tl, err := Record(context.Background(), DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if err := WriteText(buf, tl, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatal("expected no escape codes with colour off")
	}
	for _, want := range []string{"unrest", "rich_fallen", "govt_fallen", "final end_state (completed)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}
