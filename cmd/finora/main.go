package main

import (
	"os"

	"finora/cmd/finora/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
