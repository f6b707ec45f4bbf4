package main

import (
	"os"

	"numeral-converter/cmd/numeral-converter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
