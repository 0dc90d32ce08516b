package main

import (
	"os"

	"ebicsletter/cmd/ebicsletter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
