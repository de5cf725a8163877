package main

import (
	"os"

	"telebridge/cmd/telebridge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
