package typecheck_test

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/timb-machine-mirrors/gnu-poke/internal/fixtures"
	"github.com/timb-machine-mirrors/gnu-poke/internal/perrors"
	"github.com/timb-machine-mirrors/gnu-poke/internal/typecheck"
)

// TestScenarioArchiveMatchesFixtures cross-checks every internal/fixtures
// program against the golden expectations recorded in
// testdata/scenarios.txtar, so a new fixture or a changed diagnostic
// kind shows up as a one-line archive diff instead of a rewritten Go
// assertion.
func TestScenarioArchiveMatchesFixtures(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/scenarios.txtar")
	if err != nil {
		t.Fatalf("failed to load scenario archive: %v", err)
	}

	want := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		want[f.Name] = strings.TrimSpace(string(f.Data))
	}

	for _, name := range fixtures.Names() {
		expected, ok := want[name]
		if !ok {
			t.Errorf("fixture %q has no entry in testdata/scenarios.txtar", name)
			continue
		}

		t.Run(name, func(t *testing.T) {
			program, ok := fixtures.Build(name)
			if !ok {
				t.Fatalf("no such fixture %q", name)
			}
			sink := &perrors.CollectingSink{}
			payload := typecheck.NewPayload(sink)
			typecheck.Typify1(program, payload)
			typecheck.Typify2(program, payload)

			if expected == "ok" {
				if len(sink.Diagnostics) != 0 {
					t.Errorf("expected no diagnostics, got %v", sink.Diagnostics)
				}
				return
			}

			if len(sink.Diagnostics) == 0 {
				t.Fatalf("expected a %q diagnostic, got none", expected)
			}
			if got := string(sink.Diagnostics[0].Kind); got != expected {
				t.Errorf("got diagnostic kind %q, want %q", got, expected)
			}
		})
	}

	for name := range want {
		found := false
		for _, n := range fixtures.Names() {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("testdata/scenarios.txtar names fixture %q, which no longer exists", name)
		}
	}
}
