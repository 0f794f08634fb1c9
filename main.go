package main

import (
	"os"

	"github.com/samuelfneumann/marsrover/commands"
)

func main() {
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
