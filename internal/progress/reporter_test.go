package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Exporting site"}

	r.Start(2)
	r.Update(1, "Belgium")
	r.Update(2, "France")
	r.Finish()

	want := "Exporting site: 2 pages\n[1/2] Belgium\n[2/2] France\nExporting site: done\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	r, ok := NewReporter("Exporting").(*TerminalReporter)
	if !ok {
		t.Fatal("expected TerminalReporter")
	}
	if !strings.EqualFold(r.Description, "exporting") {
		t.Errorf("description = %q", r.Description)
	}
}
