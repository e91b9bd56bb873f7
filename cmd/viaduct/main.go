package main

import (
	"os"

	"viaduct/cmd/viaduct/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
