package commands

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/tidwall/gjson"
)

func TestCheckTextOutputCleanFixture(t *testing.T) {
	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	checkFormat = "text"
	defer checkCmd.SetOut(nil)

	if err := runCheck(checkCmd, []string{"simple_add"}); err != nil {
		t.Fatalf("runCheck returned an error: %v", err)
	}
	snaps.MatchSnapshot(t, "check_simple_add_text", buf.String())
}

func TestCheckJSONOutputReportsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	checkFormat = "json"
	defer checkCmd.SetOut(nil)
	defer func() { checkFormat = "text" }()

	if err := runCheck(checkCmd, []string{"width_error"}); err != nil {
		t.Fatalf("runCheck returned an error: %v", err)
	}
	doc := buf.String()
	snaps.MatchSnapshot(t, "check_width_error_json", doc)

	// gjson lets the assertion reach straight into the report's shape
	// without re-parsing it into a Go struct just for this one check.
	if got := gjson.Get(doc, "fixtures.0.name").String(); got != "width_error" {
		t.Errorf("fixtures.0.name = %q, want %q", got, "width_error")
	}
	if gjson.Get(doc, "fixtures.0.ok").Bool() {
		t.Error("fixtures.0.ok = true, want false for a fixture with a reported diagnostic")
	}
	if kind := gjson.Get(doc, "fixtures.0.diagnostics.0.kind").String(); kind == "" {
		t.Error("fixtures.0.diagnostics.0.kind is empty, want a reported diagnostic kind")
	}
}

func TestCheckUnknownFixtureErrors(t *testing.T) {
	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	checkFormat = "text"
	defer checkCmd.SetOut(nil)

	if err := runCheck(checkCmd, []string{"not_a_real_fixture"}); err == nil {
		t.Fatal("expected an error for an unregistered fixture name")
	}
}

func TestCheckListPrintsRegisteredNames(t *testing.T) {
	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	defer checkCmd.SetOut(nil)

	if err := runCheck(checkCmd, []string{"list"}); err != nil {
		t.Fatalf("runCheck returned an error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected \"list\" to print at least one fixture name")
	}
}
