package commands

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/timb-machine-mirrors/gnu-poke/internal/fixtures"
	"github.com/timb-machine-mirrors/gnu-poke/internal/perrors"
	"github.com/timb-machine-mirrors/gnu-poke/internal/typecheck"
)

var checkFormat string

var checkCmd = &cobra.Command{
	Use:   "check [fixture...]",
	Short: "Run typify-1 and typify-2 over one or more fixtures and print diagnostics",
	Long: `check runs typify-1 then typify-2 over each named fixture, one goroutine
per fixture, and prints the diagnostics each run produced.

With no fixture names, check runs every registered fixture. Pass "list" to
print the registered fixture names instead of running anything.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", `output format: "text" or "json"`)
}

type checkResult struct {
	Name        string
	Diagnostics []perrors.Diagnostic
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && args[0] == "list" {
		names := fixtures.Names()
		slices.Sort(names)
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	}

	names := args
	if len(names) == 0 {
		names = fixtures.Names()
		slices.Sort(names)
	}

	results := make([]checkResult, len(names))
	g := new(errgroup.Group)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			program, ok := fixtures.Build(name)
			if !ok {
				return fmt.Errorf("unknown fixture %q", name)
			}
			sink := &perrors.CollectingSink{}
			payload := typecheck.NewPayload(sink)
			typecheck.Typify1(program, payload)
			typecheck.Typify2(program, payload)
			results[i] = checkResult{Name: name, Diagnostics: sink.Diagnostics}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	switch checkFormat {
	case "json":
		return printCheckJSON(cmd, results)
	default:
		printCheckText(cmd, results)
		return nil
	}
}

func printCheckText(cmd *cobra.Command, results []checkResult) {
	out := cmd.OutOrStdout()
	color := out == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())
	for _, r := range results {
		if len(r.Diagnostics) == 0 {
			if color {
				fmt.Fprintf(out, "\x1b[32m%s: ok\x1b[0m\n", r.Name)
			} else {
				fmt.Fprintf(out, "%s: ok\n", r.Name)
			}
			continue
		}
		for _, d := range r.Diagnostics {
			if color {
				fmt.Fprintf(out, "%s: \x1b[31m%s\x1b[0m\n", r.Name, d.String())
			} else {
				fmt.Fprintf(out, "%s: %s\n", r.Name, d.String())
			}
		}
	}
}

func printCheckJSON(cmd *cobra.Command, results []checkResult) error {
	doc := "{}"
	var err error
	for i, r := range results {
		base := fmt.Sprintf("fixtures.%d", i)
		doc, err = sjson.Set(doc, base+".name", r.Name)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, base+".ok", len(r.Diagnostics) == 0)
		if err != nil {
			return err
		}
		for j, d := range r.Diagnostics {
			dbase := fmt.Sprintf("%s.diagnostics.%d", base, j)
			doc, err = sjson.Set(doc, dbase+".kind", string(d.Kind))
			if err != nil {
				return err
			}
			doc, err = sjson.Set(doc, dbase+".message", d.Message)
			if err != nil {
				return err
			}
			doc, err = sjson.Set(doc, dbase+".file", d.Loc.File)
			if err != nil {
				return err
			}
			doc, err = sjson.Set(doc, dbase+".line", d.Loc.Line)
			if err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}
