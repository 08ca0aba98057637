package ptype

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

// DebugString renders the full internal shape of a type value (as
// opposed to String's Poke surface syntax), for the CLI's dump-types
// diagnostic mode.
func DebugString(t Type) string {
	return fmt.Sprintf("%# v", pretty.Formatter(t))
}

// SizeDescription renders a bit count the way diagnostics and the CLI
// report a complete type's size: bits, and bytes when that divides
// evenly, e.g. "128 bits (16 B)".
func SizeDescription(bits uint64) string {
	if bits%8 == 0 {
		return fmt.Sprintf("%s bits (%s)", humanize.Comma(int64(bits)), humanize.Bytes(bits/8))
	}
	return fmt.Sprintf("%s bits", humanize.Comma(int64(bits)))
}
