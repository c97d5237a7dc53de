package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootYAML(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-o", "yaml", "--seed", "5", "--delay", "10", "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"seed: 5", "final_stage: end_state", "completed: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestRootRejectsFormat(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"-o", "xml", "--log-level", "error"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
