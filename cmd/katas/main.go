package main

import (
	"os"

	"github.com/katalvlaran/katas/cmd/katas/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
