package main

import (
	"os"

	"github.com/balancebook-dev/balancebook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
