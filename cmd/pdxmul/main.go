// Command pdxmul builds multiplier mods for Paradox-script game data.
//
// The gen-modifiers subcommand expands a raw modifier name list into
// a JSON multiplier table; the multiply subcommand applies such a
// table to a game data tree, writing changed files to a destination
// mod directory.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
