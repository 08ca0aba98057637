// Package commands implements pkltype's subcommands: a thin
// demonstration CLI over the internal/typecheck pass, one file per
// subcommand.
package commands

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "pkltype",
	Short: "Run the typify-1/typify-2 passes over a built-in fixture program",
	Long: `pkltype is a demonstration CLI around this repository's type-inference,
type-checking and completeness pass.

There is no Poke lexer or parser in this repository (out of scope): every
program pkltype can run is a named, hand-built AST fixture registered in
internal/fixtures. Run "pkltype check list" to list them.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
