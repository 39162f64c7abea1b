package main

import (
	"os"

	"devlink/cmd/devlink/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
