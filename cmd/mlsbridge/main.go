package main

import (
	"os"

	"mlsbridge/cmd/mlsbridge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
