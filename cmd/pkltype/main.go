// Command pkltype is a thin demonstration CLI over this repository's
// type-inference, type-checking and completeness pass. There is no Poke
// lexer/parser in scope, so every program it can run is a named,
// hand-built fixture from internal/fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/timb-machine-mirrors/gnu-poke/cmd/pkltype/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
