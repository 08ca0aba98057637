package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/fixtures"
	"github.com/timb-machine-mirrors/gnu-poke/internal/perrors"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
	"github.com/timb-machine-mirrors/gnu-poke/internal/typecheck"
)

var dumpTypesHumanize bool

var dumpTypesCmd = &cobra.Command{
	Use:   "dump-types <fixture>",
	Short: "Run typify-1 and typify-2 over a fixture and print every inferred type",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpTypes,
}

func init() {
	dumpTypesCmd.Flags().BoolVar(&dumpTypesHumanize, "humanize", false, "append a human-readable bit/byte size next to every statically-sized type")
	rootCmd.AddCommand(dumpTypesCmd)
}

func runDumpTypes(cmd *cobra.Command, args []string) error {
	name := args[0]
	program, ok := fixtures.Build(name)
	if !ok {
		return fmt.Errorf("unknown fixture %q (run \"pkltype check list\" to see registered names)", name)
	}

	sink := &perrors.CollectingSink{}
	payload := typecheck.NewPayload(sink)
	typecheck.Typify1(program, payload)
	typecheck.Typify2(program, payload)

	out := cmd.OutOrStdout()
	for _, d := range sink.Diagnostics {
		fmt.Fprintf(out, "diagnostic: %s\n", d.String())
	}

	for _, stmt := range program.Stmts {
		dumpStmtTypes(out, stmt)
	}
	return nil
}

func locString(loc ast.Location) string {
	return fmt.Sprintf("%s:%d", loc.File, loc.Line)
}

func dumpStmtTypes(out io.Writer, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		dumpExprType(out, n.Expr)
	case *ast.VarDeclStmt:
		fmt.Fprintf(out, "%s: var %s : %s\n", locString(n.Loc()), n.Decl.Name, ptype.DebugString(n.Decl.Typ))
		if dumpTypesHumanize {
			if bits, ok := ptype.StaticBitSize(n.Decl.Typ); ok {
				fmt.Fprintf(out, "%s:   %s\n", locString(n.Loc()), ptype.SizeDescription(bits))
			}
		}
		dumpExprType(out, n.Init)
	case *ast.PrintStmt:
		dumpExprType(out, n.Expr)
	case *ast.RaiseStmt:
		dumpExprType(out, n.Expr)
	case *ast.ReturnStmt:
		dumpExprType(out, n.Expr)
	case *ast.TryStmt:
		for _, s := range n.TryBody {
			dumpStmtTypes(out, s)
		}
		dumpExprType(out, n.CatchCond)
		for _, s := range n.CatchBody {
			dumpStmtTypes(out, s)
		}
	case *ast.Loop:
		dumpExprType(out, n.Cond)
		dumpExprType(out, n.Update)
		dumpExprType(out, n.Container)
		for _, s := range n.Body {
			dumpStmtTypes(out, s)
		}
	case *ast.Block:
		for _, s := range n.Stmts {
			dumpStmtTypes(out, s)
		}
	}
}

func dumpExprType(out io.Writer, e ast.Expr) {
	if e == nil {
		return
	}
	if t := e.Type(); t != nil {
		fmt.Fprintf(out, "%s: %T : %s\n", locString(e.Loc()), e, ptype.DebugString(t))
		if dumpTypesHumanize {
			if bits, ok := ptype.StaticBitSize(t); ok {
				fmt.Fprintf(out, "%s:   %s\n", locString(e.Loc()), ptype.SizeDescription(bits))
			}
		}
	}
	if def, ok := e.(*ast.FuncDef); ok {
		for _, s := range def.Body {
			dumpStmtTypes(out, s)
		}
	}
}
