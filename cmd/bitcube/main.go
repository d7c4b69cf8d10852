// bitcube - CLI for turning, scrambling and inspecting a simulated cube.
package main

import (
	"github.com/SeamusWaldron/bitcube/internal/cli"
)

func main() {
	cli.Execute()
}
