// Package main provides the gndex CLI application.
// gndex shows Pokémon battle data the way it was in a chosen game.
package main

import (
	"github.com/gnames/gndex/cmd"
)

func main() {
	cmd.Execute()
}
