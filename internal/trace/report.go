package trace

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

func WriteYAML(w io.Writer, tl *Timeline) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tl); err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	return enc.Close()
}

// WriteText prints a human summary of the timeline, one line per stage,
// with alert stages and latches highlighted when colour is on.
func WriteText(w io.Writer, tl *Timeline, useColor bool) error {
	head := color.New(color.Bold)
	stage := color.New(color.FgCyan)
	alert := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)
	for _, c := range []*color.Color{head, stage, alert, dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if _, err := head.Fprintf(w, "run %s seed %d\n", tl.RunID, tl.Seed); err != nil {
		return err
	}
	for _, sp := range tl.Stages {
		c := stage
		if sp.Stage == "unrest" || sp.Stage == "machine_takeover" {
			c = alert
		}
		if _, err := fmt.Fprintf(w, "%6d  %s  %s\n", sp.Enter, c.Sprintf("%-20s", sp.Stage), dim.Sprintf("%d frames", sp.Frames)); err != nil {
			return err
		}
	}
	for _, e := range tl.Events {
		if e.Event != "rich_fallen" && e.Event != "govt_fallen" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%6d  %s\n", e.Frame, alert.Sprint(e.Event)); err != nil {
			return err
		}
	}

	status := "completed"
	if !tl.Completed {
		status = "incomplete"
	}
	_, err := head.Fprintf(w, "%d frames, final %s (%s)\n", tl.Frames, tl.Final, status)
	return err
}
