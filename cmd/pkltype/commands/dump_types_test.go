package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpTypesHumanizeAppendsSize(t *testing.T) {
	var buf bytes.Buffer
	dumpTypesCmd.SetOut(&buf)
	dumpTypesHumanize = true
	defer func() {
		dumpTypesCmd.SetOut(nil)
		dumpTypesHumanize = false
	}()

	if err := runDumpTypes(dumpTypesCmd, []string{"simple_add"}); err != nil {
		t.Fatalf("runDumpTypes returned an error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "bits") {
		t.Errorf("expected --humanize output to contain a bit-size line, got %q", out)
	}
}

func TestDumpTypesWithoutHumanizeOmitsSize(t *testing.T) {
	var buf bytes.Buffer
	dumpTypesCmd.SetOut(&buf)
	dumpTypesHumanize = false
	defer dumpTypesCmd.SetOut(nil)

	if err := runDumpTypes(dumpTypesCmd, []string{"simple_add"}); err != nil {
		t.Fatalf("runDumpTypes returned an error: %v", err)
	}
	if strings.Contains(buf.String(), "bits") {
		t.Error("expected no bit-size line without --humanize")
	}
}
